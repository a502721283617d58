package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrFormat is returned for colour strings that cannot be decoded.
var ErrFormat = errors.New("palette: malformed color")

// FallbackColor is the colour name returned for labels missing from a Registry.
const FallbackColor = "black"

// RGB8 is a colour with 8-bit channels.
type RGB8 struct {
	R, G, B uint8
}

// RGB is a colour with channels normalized to [0,1]. Values above 1 are
// legal and come out of Encode when the path count exceeds its maximum.
type RGB struct {
	R, G, B float64
}

// HSV holds hue, saturation and value, each in [0,1]. Hue is a fraction of a turn.
type HSV struct {
	H, S, V float64
}

// HexToRGB decodes "#RRGGBB" (the '#' is optional). Only the first six
// characters after the leading '#' are read.
func HexToRGB(hex string) (RGB8, error) {
	digits := strings.TrimLeft(hex, "#")
	if len(digits) < 6 {
		return RGB8{}, fmt.Errorf("%w: %q is shorter than 6 hex digits", ErrFormat, hex)
	}
	var channels [3]uint8
	for i, pos := range []int{0, 2, 4} {
		v, err := strconv.ParseUint(digits[pos:pos+2], 16, 8)
		if err != nil {
			return RGB8{}, fmt.Errorf("%w: %q: %v", ErrFormat, hex, err)
		}
		channels[i] = uint8(v)
	}
	return RGB8{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// ParseColor accepts either a hex string or the FallbackColor name.
func ParseColor(s string) (RGB8, error) {
	if strings.EqualFold(s, FallbackColor) {
		return RGB8{}, nil
	}
	return HexToRGB(s)
}

// Hex formats c as "#RRGGBB".
func (c RGB8) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB8) Normalize() RGB {
	return RGB{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Denormalize rounds every channel back to 8 bits, clamping to [0,255].
func (c RGB) Denormalize() RGB8 {
	return RGB8{R: toByte(c.R), G: toByte(c.G), B: toByte(c.B)}
}

func (c RGB) ToHSV() HSV {
	h, s, v := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsv()
	return HSV{H: h / 360, S: s, V: v}
}

func (c HSV) ToRGB() RGB {
	col := colorful.Hsv(math.Mod(c.H, 1)*360, c.S, c.V)
	return RGB{R: col.R, G: col.G, B: col.B}
}

// Color converts c for drawing. A colour brighter than 1 is first brought
// back to V = 1 in HSV space so its hue and saturation survive; any channel
// still outside [0,1] is then clamped. This is the only place clamping happens.
func (c RGB) Color() color.NRGBA {
	if hsv := c.ToHSV(); hsv.V > 1 {
		hsv.V = 1
		c = hsv.ToRGB()
	}
	d := c.Denormalize()
	return color.NRGBA{R: d.R, G: d.G, B: d.B, A: 0xff}
}

func toByte(x float64) uint8 {
	switch {
	case math.IsNaN(x) || x <= 0:
		return 0
	case x >= 1:
		return 0xff
	}
	return uint8(math.Round(x * 255))
}
