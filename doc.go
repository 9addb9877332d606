// Package pickr is the engine of an embeddable color picker.
//
// # Overview
//
// A picker lets a user choose a color by dragging a handle over a
// saturation/value palette, by dragging hue and opacity sliders, and by
// typing color text. pickr owns the math and the state; the host toolkit
// owns widgets, pointer capture and layout, and talks to pickr through the
// View, Draggable, Track and Selectable interfaces.
//
// # Quick Start
//
//	p, err := pickr.New(view, pickr.Controls{
//	    Palette: pickr.Slider{Handle: paletteHandle, Track: paletteTrack},
//	    Hue:     pickr.Slider{Handle: hueHandle, Track: hueTrack},
//	    Opacity: pickr.Slider{Handle: opacityHandle, Track: opacityTrack},
//	}, pickr.WithDefaultColor("#42445a"), pickr.WithOnSave(onSave))
//	if err != nil {
//	    return err
//	}
//
//	// Forward host events.
//	p.MovePalette(x, y)
//	p.SetColor(inputText)
//	p.Save()
//
// # Colors
//
// HSVA is the canonical color value. It converts to the text formats
//
//	#rrggbb  rgba(r, g, b, a)  hsla(h, s%, l%, a)  hsva(h, s%, v%, a)  cmyk(c%, m%, y%, k%)
//
// and implements image/color.Color. Parse reads those formats back, along
// with bare hex digits, loose separators and CSS color keywords.
//
// # Coordinates
//
// Handle positions are always derived from the color, never the other way
// round except while dragging: PaletteToSV, HueAt and OpacityAt map a
// position to a component, SVToPalette, HueOffset and OpacityOffset map it
// back. Place keeps the popup inside the viewport.
//
// # Errors
//
// Invalid input never fails loudly. FromHSVA returns an error wrapping
// ErrOutOfRange, Parse reports false, and the Picker ignores both, keeping
// its last good color.
package pickr
