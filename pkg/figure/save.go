package figure

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

func (d Dimensions) lengths() (vg.Length, vg.Length) {
	return vg.Length(d.Width) * vg.Inch, vg.Length(d.Height) * vg.Inch
}

// Save writes p to filename at size d. The format follows the extension.
func Save(p *plot.Plot, d Dimensions, filename string) error {
	w, h := d.lengths()
	return p.Save(w, h, filename)
}

// SaveTiled draws a rows x cols matrix of plots on a single PDF page. Each
// tile gets size d, so the page is cols*d.Width by rows*d.Height. Nil
// entries leave their tile empty.
func SaveTiled(plots [][]*plot.Plot, d Dimensions, filename string) error {
	rows := len(plots)
	if rows == 0 {
		return fmt.Errorf("figure: no plots to tile")
	}
	cols := len(plots[0])
	for _, row := range plots {
		if len(row) != cols {
			return fmt.Errorf("figure: ragged plot matrix")
		}
	}

	w, h := d.lengths()
	img := vgpdf.New(w*vg.Length(cols), h*vg.Length(rows))
	dc := draw.New(img)

	t := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter,
		PadTop:    vg.Points(2),
		PadBottom: vg.Points(2),
		PadLeft:   vg.Points(2),
		PadRight:  vg.Points(2),
	}

	canvases := plot.Align(plots, t, dc)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if plots[i][j] != nil {
				plots[i][j].Draw(canvases[i][j])
			}
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err := img.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SavePages writes each plot to its own page of a single PDF.
func SavePages(plots []*plot.Plot, d Dimensions, filename string) error {
	w, h := d.lengths()
	pdf := vgpdf.New(w, h)
	for i, p := range plots {
		if i != 0 {
			pdf.NextPage()
		}
		p.Draw(draw.New(pdf))
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err := pdf.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
