package pickr

import (
	"fmt"
	"image/color"
	"math"

	icolor "github.com/gogpu/pickr/internal/color"
)

// HSVA is the canonical color value of a picker.
//
// Hue is in degrees [0, 360], saturation and value are percentages
// [0, 100], alpha is in [0, 1]. Values keep full precision; rounding only
// happens when a color is formatted. HSVA is comparable with == and is
// copied by value, so a stored HSVA never changes behind its owner's back.
//
// The zero value is fully transparent black.
type HSVA struct {
	h, s, v, a float64
}

// Component domains.
const (
	MaxHue        = 360
	MaxSaturation = 100
	MaxValue      = 100
	MaxAlpha      = 1
)

// Black is opaque black, the color a picker starts from before its default
// color is applied.
var Black = HSVA{a: 1}

// FromHSVA creates a color from hue, saturation, value and alpha.
// It returns a *RangeError wrapping ErrOutOfRange when any argument lies
// outside its domain; NaN is always out of range.
func FromHSVA(h, s, v, a float64) (HSVA, error) {
	if err := checkRange("hue", h, 0, MaxHue); err != nil {
		return HSVA{}, err
	}
	if err := checkRange("saturation", s, 0, MaxSaturation); err != nil {
		return HSVA{}, err
	}
	if err := checkRange("value", v, 0, MaxValue); err != nil {
		return HSVA{}, err
	}
	if err := checkRange("alpha", a, 0, MaxAlpha); err != nil {
		return HSVA{}, err
	}
	return HSVA{h: h, s: s, v: v, a: a}, nil
}

func checkRange(field string, x, lo, hi float64) error {
	if x >= lo && x <= hi {
		return nil
	}
	return &RangeError{Field: field, Value: x, Min: lo, Max: hi}
}

// clampHSVA builds a color from values that are already known to be in
// range up to floating point error.
func clampHSVA(h, s, v, a float64) HSVA {
	return HSVA{
		h: icolor.Clamp(h, 0, MaxHue),
		s: icolor.Clamp(s, 0, MaxSaturation),
		v: icolor.Clamp(v, 0, MaxValue),
		a: icolor.Clamp(a, 0, MaxAlpha),
	}
}

// fromRGB8 converts an 8-bit RGB triple plus alpha to HSVA.
func fromRGB8(c icolor.RGB8, a float64) HSVA {
	h, s, v := icolor.RGBToHSV(c.F64())
	return clampHSVA(h, s*100, v*100, a)
}

// H returns the hue in degrees.
func (c HSVA) H() float64 { return c.h }

// S returns the saturation percentage.
func (c HSVA) S() float64 { return c.s }

// V returns the value (brightness) percentage.
func (c HSVA) V() float64 { return c.v }

// A returns the alpha in [0, 1].
func (c HSVA) A() float64 { return c.a }

// Components returns hue, saturation, value and alpha.
func (c HSVA) Components() (h, s, v, a float64) {
	return c.h, c.s, c.v, c.a
}

// Clone returns an independent copy of c.
func (c HSVA) Clone() HSVA {
	return c
}

// WithHue returns c with its hue replaced. Out-of-range hues are clamped.
func (c HSVA) WithHue(h float64) HSVA {
	return clampHSVA(h, c.s, c.v, c.a)
}

// WithSV returns c with saturation and value replaced, clamped to [0, 100].
func (c HSVA) WithSV(s, v float64) HSVA {
	return clampHSVA(c.h, s, v, c.a)
}

// WithAlpha returns c with its alpha replaced, clamped to [0, 1].
func (c HSVA) WithAlpha(a float64) HSVA {
	return clampHSVA(c.h, c.s, c.v, a)
}

// rgb8 returns the rounded 8-bit RGB channels.
func (c HSVA) rgb8() icolor.RGB8 {
	return icolor.ToRGB8(icolor.HSVToRGB(c.h, c.s/100, c.v/100))
}

// RGB returns the red, green and blue channels in [0, 255].
func (c HSVA) RGB() (r, g, b uint8) {
	rgb := c.rgb8()
	return rgb.R, rgb.G, rgb.B
}

// HSLA returns hue in degrees, saturation and lightness as percentages
// and alpha unchanged.
func (c HSVA) HSLA() (h, s, l, a float64) {
	sl, ll := icolor.HSVToHSL(c.s/100, c.v/100)
	return c.h, sl * 100, ll * 100, c.a
}

// CMYK returns cyan, magenta, yellow and black as percentages. It is
// derived from the rounded RGB channels; alpha has no CMYK representation.
func (c HSVA) CMYK() (cy, m, y, k float64) {
	cy, m, y, k = icolor.RGBToCMYK(c.rgb8().F64())
	return cy * 100, m * 100, y * 100, k * 100
}

// HEX returns the color as "#rrggbb". Alpha is not encoded.
func (c HSVA) HEX() string {
	rgb := c.rgb8()
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// NRGBA converts the color to the standard non-premultiplied color type.
func (c HSVA) NRGBA() color.NRGBA {
	rgb := c.rgb8()
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: uint8(math.Round(c.a * 255))}
}

// RGBA implements color.Color, returning alpha-premultiplied channels.
func (c HSVA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// FromColor converts any color.Color to HSVA.
func FromColor(cc color.Color) HSVA {
	n, _ := color.NRGBAModel.Convert(cc).(color.NRGBA)
	return fromRGB8(icolor.RGB8{R: n.R, G: n.G, B: n.B}, float64(n.A)/255)
}

// String returns the hsva(...) form.
func (c HSVA) String() string {
	return c.Text(FormatHSVA)
}
