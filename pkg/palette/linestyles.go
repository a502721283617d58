package palette

// LineStyle is an offset followed by an on/off dash sequence, in points.
type LineStyle struct {
	Offset float64
	Dashes []float64
}

// LineStyles are the dash patterns assigned to series in order.
var LineStyles = []LineStyle{
	{0, []float64{1, 1}},
	{5, []float64{10, 3}},
	{0, []float64{5, 5}},
	{0, []float64{5, 1}},
	{0, []float64{3, 10, 1, 10}},
	{0, []float64{3, 5, 1, 5}},
	{0, []float64{3, 1, 1, 1}},
	{0, []float64{3, 5, 1, 5, 1, 5}},
	{0, []float64{3, 10, 1, 10, 1, 10}},
	{0, []float64{3, 1, 1, 1, 1, 1}},
}

// DashPattern returns the i-th line style, wrapping around the table.
// Negative indexes count from the end.
func DashPattern(i int) LineStyle {
	n := len(LineStyles)
	i %= n
	if i < 0 {
		i += n
	}
	return LineStyles[i]
}
