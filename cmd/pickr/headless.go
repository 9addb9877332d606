package main

import "github.com/gogpu/pickr"

// headless is a pickr.View with no surface. It remembers what a widget
// would display and lays the popup out like a positioned element.
type headless struct {
	output  string
	preview pickr.HSVA
	saved   pickr.HSVA
	cleared bool
	visible bool
	removed bool

	offset       pickr.Offset
	anchor       pickr.Rect
	popup        pickr.Size
	viewport     pickr.Size
	appendToBody bool
}

func (h *headless) SetOutput(text string)    { h.output = text }
func (h *headless) SetPreview(c pickr.HSVA)  { h.preview = c }
func (h *headless) SetSaved(c pickr.HSVA)    { h.saved = c }
func (h *headless) SetCleared(cleared bool)  { h.cleared = cleared }
func (h *headless) SetVisible(visible bool)  { h.visible = visible }
func (h *headless) SetOffset(o pickr.Offset) { h.offset = o }
func (h *headless) Remove()                  { h.removed = true }

// Geometry measures the popup at the current offset. A popup inside the
// anchor's parent starts at the anchor; one appended to the body starts at
// its margin.
func (h *headless) Geometry() pickr.Geometry {
	origin := pickr.Pt(h.anchor.X, h.anchor.Y)
	if h.appendToBody {
		origin = h.offset.Margin
	}
	return pickr.Geometry{
		Anchor: h.anchor,
		Popup: pickr.Rect{
			X: origin.X + h.offset.Left,
			Y: origin.Y + h.offset.Top,
			W: h.popup.W,
			H: h.popup.H,
		},
		Current:  h.offset,
		Viewport: h.viewport,
	}
}

type handle struct{ at pickr.Point }

func (h *handle) Update(x, y float64) { h.at = pickr.Pt(x, y) }
func (h *handle) Destroy()            {}

type track pickr.Size

func (t track) Size() pickr.Size { return pickr.Size(t) }

type buttons struct{ active pickr.Format }

func (b *buttons) Select(f pickr.Format) { b.active = f }
func (b *buttons) Destroy()              {}
