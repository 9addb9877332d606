// Package color provides the color space conversions behind pickr's formats.
//
// Hue is always expressed in degrees [0, 360]. Every other channel
// (saturation, value, lightness, red, green, blue, cyan, magenta, yellow,
// black) is normalized to [0, 1]. All functions are pure.
package color

// RGB8 represents a color with uint8 components in [0,255].
// Alpha is carried separately by callers; most display formats drop it.
type RGB8 struct {
	R, G, B uint8
}

// F64 returns the channels normalized to [0,1].
func (c RGB8) F64() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// ToRGB8 converts normalized channels to RGB8 with rounding.
func ToRGB8(r, g, b float64) RGB8 {
	return RGB8{R: ToU8(r), G: ToU8(g), B: ToU8(b)}
}
