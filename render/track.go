// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/pickr"
	icolor "github.com/gogpu/pickr/internal/color"
)

// Checkerboard colors and cell size used behind translucent colors.
var (
	CheckerLight = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	CheckerDark  = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
)

// CheckerSize is the edge length of one checkerboard cell in pixels.
const CheckerSize = 6

func newImage(w, h int) *image.NRGBA {
	if w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rectangle{})
	}
	return image.NewNRGBA(image.Rect(0, 0, w, h))
}

// span returns the denominator that maps pixel index i in [0, n) to [0, 1].
func span(n int) float64 {
	if n <= 1 {
		return 1
	}
	return float64(n - 1)
}

// Palette draws the saturation/value palette for c's hue. Saturation grows
// left to right, value falls top to bottom, matching pickr.PaletteToSV.
// Every pixel carries c's alpha.
func Palette(c pickr.HSVA, w, h int) *image.NRGBA {
	img := newImage(w, h)
	a := c.NRGBA().A
	for y := 0; y < h; y++ {
		v := 1 - float64(y)/span(h)
		for x := 0; x < w; x++ {
			s := float64(x) / span(w)
			rgb := icolor.ToRGB8(icolor.HSVToRGB(c.H(), s, v))
			img.SetNRGBA(x, y, color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: a})
		}
	}
	return img
}

// HueStrip draws hue 0 at the top to 360 at the bottom at full saturation
// and value, matching pickr.HueAt.
func HueStrip(w, h int) *image.NRGBA {
	img := newImage(w, h)
	if w <= 0 || h <= 0 {
		return img
	}

	// One column is enough; scaling fills the width.
	col := image.NewNRGBA(image.Rect(0, 0, 1, h))
	for y := 0; y < h; y++ {
		hue := 360 * float64(y) / span(h)
		rgb := icolor.ToRGB8(icolor.HSVToRGB(hue, 1, 1))
		col.SetNRGBA(0, y, color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xff})
	}
	draw.NearestNeighbor.Scale(img, img.Bounds(), col, col.Bounds(), draw.Src, nil)
	return img
}

// OpacityStrip draws c's RGB with alpha 0 at the top to 1 at the bottom,
// composited over a checkerboard, matching pickr.OpacityAt.
func OpacityStrip(c pickr.HSVA, w, h int) *image.NRGBA {
	img := newImage(w, h)
	fillChecker(img)
	r, g, b := c.RGB()
	for y := 0; y < h; y++ {
		a := icolor.ToU8(float64(y) / span(h))
		row := image.Rect(0, y, w, y+1)
		draw.Draw(img, row, image.NewUniform(color.NRGBA{R: r, G: g, B: b, A: a}), image.Point{}, draw.Over)
	}
	return img
}

// Swatch draws c over a checkerboard.
func Swatch(c pickr.HSVA, w, h int) *image.NRGBA {
	img := newImage(w, h)
	fillChecker(img)
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Over)
	return img
}

func fillChecker(img *image.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if (x/CheckerSize+y/CheckerSize)%2 == 0 {
				img.SetNRGBA(x, y, CheckerLight)
			} else {
				img.SetNRGBA(x, y, CheckerDark)
			}
		}
	}
}

// Handle identifies one of the three draggable handles.
type Handle uint8

const (
	HandlePalette Handle = iota
	HandleHue
	HandleOpacity
)

// HandleColor returns the fill of handle k for color c: the color itself
// on the palette, the pure hue on the hue slider, and black at c's alpha
// on the opacity slider.
func HandleColor(k Handle, c pickr.HSVA) color.NRGBA {
	switch k {
	case HandleHue:
		rgb := icolor.ToRGB8(icolor.HSVToRGB(c.H(), 1, 1))
		return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xff}
	case HandleOpacity:
		return color.NRGBA{A: c.NRGBA().A}
	default:
		return c.NRGBA()
	}
}

// Tracks lays the palette, hue strip and opacity strip side by side with
// gap pixels between them. The strips share the palette's height.
func Tracks(c pickr.HSVA, paletteW, stripW, h, gap int) *image.NRGBA {
	w := paletteW + 2*(stripW+gap)
	img := newImage(w, h)
	if img.Bounds().Empty() {
		return img
	}
	parts := []*image.NRGBA{
		Palette(c, paletteW, h),
		HueStrip(stripW, h),
		OpacityStrip(c, stripW, h),
	}
	x := 0
	for _, part := range parts {
		r := part.Bounds().Add(image.Pt(x, 0))
		draw.Draw(img, r, part, image.Point{}, draw.Src)
		x += part.Bounds().Dx() + gap
	}
	return img
}
