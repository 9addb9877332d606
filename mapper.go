package pickr

import (
	"math"

	icolor "github.com/gogpu/pickr/internal/color"
)

// Coordinate mapping between handle positions and color components.
//
// Each forward function maps a position inside a track to a component,
// each inverse maps the component back. Both directions are pure functions
// of the track size, so re-deriving every handle from a color never drifts.
// A track with a non-positive extent maps every position to ratio 0.

// ratio returns pos/length clamped to [0, 1].
func ratio(pos, length float64) float64 {
	if !(length > 0) {
		return 0
	}
	return icolor.Clamp(pos/length, 0, 1)
}

// PaletteToSV maps a handle position in the saturation/value palette to
// saturation (left to right) and value (bottom to top), both rounded
// percentages.
func PaletteToSV(p Point, track Size) (s, v float64) {
	s = math.Round(100 * ratio(p.X, track.W))
	v = math.Round(100 - 100*ratio(p.Y, track.H))
	return s, v
}

// SVToPalette is the inverse of PaletteToSV.
func SVToPalette(s, v float64, track Size) Point {
	return Point{
		X: math.Max(track.W, 0) * s / 100,
		Y: math.Max(track.H, 0) * (1 - v/100),
	}
}

// HueAt maps a vertical position in the hue slider to a hue in whole
// degrees, 0 at the top.
func HueAt(y, height float64) float64 {
	return math.Round(360 * ratio(y, height))
}

// HueOffset is the inverse of HueAt.
func HueOffset(h, height float64) float64 {
	return math.Max(height, 0) * h / 360
}

// OpacityAt maps a vertical position in the opacity slider to an alpha
// with two decimals, 0 at the top.
func OpacityAt(y, height float64) float64 {
	return math.Round(100*ratio(y, height)) / 100
}

// OpacityOffset is the inverse of OpacityAt.
func OpacityOffset(a, height float64) float64 {
	return math.Max(height, 0) * a
}

// Positions holds the handle positions derived from one color.
type Positions struct {
	Palette Point
	Hue     Point
	Opacity Point
}

// HandlePositions derives all three handle positions for c. Slider handles
// are axis-locked, so their X is always 0.
func HandlePositions(c HSVA, palette, hue, opacity Size) Positions {
	return Positions{
		Palette: SVToPalette(c.s, c.v, palette),
		Hue:     Pt(0, HueOffset(c.h, hue.H)),
		Opacity: Pt(0, OpacityOffset(c.a, opacity.H)),
	}
}
