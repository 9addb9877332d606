package pickr

import (
	"fmt"
	"log/slog"
)

// Picker is the color picker controller. It owns the working color and the
// last saved color; every change goes through its methods.
//
// A Picker handles one event at a time and is not safe for concurrent use.
// Host events (drag moves, key presses, clicks, resizes) must be delivered
// from a single goroutine in the order they occur.
type Picker struct {
	opts     Options
	view     View
	controls Controls
	log      *slog.Logger

	color HSVA
	last  HSVA

	format    Format
	hasFormat bool

	// textInput is set while the user is typing; the output field is then
	// left alone so a reformatted value does not overwrite the typed text.
	textInput bool

	visible   bool
	cleared   bool
	destroyed bool
	removed   bool
}

// New creates a picker bound to view and controls.
//
// The default color is applied, the popup is placed, and the default is
// saved as the last color (OnSave fires once). The popup starts hidden
// unless AlwaysVisible is set.
func New(view View, controls Controls, opts ...Option) (*Picker, error) {
	if view == nil {
		return nil, ErrNilView
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o = applyDefaults(o)

	if err := checkControls(controls, o.Components); err != nil {
		return nil, err
	}

	p := &Picker{
		opts:     o,
		view:     view,
		controls: controls,
		log:      o.Logger,
		color:    Black,
	}
	p.format, p.hasFormat = o.Components.Output.first()
	if p.hasFormat && controls.Formats != nil {
		controls.Formats.Select(p.format)
	}

	p.visible = o.AlwaysVisible
	view.SetVisible(p.visible)
	p.reposition()

	c, ok := Parse(o.DefaultColor)
	if ok {
		p.color = c
	} else {
		p.logger().Debug("pickr: default color rejected", "input", o.DefaultColor)
	}
	p.syncHandles()
	p.view.SetPreview(p.color)
	p.writeOutput()
	if ok {
		p.opts.OnChange(p.color)
	}

	p.saveColor()
	return p, nil
}

func checkControls(c Controls, comp Components) error {
	if !c.Palette.ok() {
		return fmt.Errorf("%w: palette", ErrMissingControl)
	}
	if comp.Hue && !c.Hue.ok() {
		return fmt.Errorf("%w: hue slider", ErrMissingControl)
	}
	if comp.Opacity && !c.Opacity.ok() {
		return fmt.Errorf("%w: opacity slider", ErrMissingControl)
	}
	return nil
}

func (p *Picker) logger() *slog.Logger {
	if p.log != nil {
		return p.log
	}
	return Logger()
}

// GetColor returns the working color.
func (p *Picker) GetColor() HSVA {
	return p.color
}

// LastColor returns the last saved color.
func (p *Picker) LastColor() HSVA {
	return p.last
}

// Format returns the active output format. ok is false when every format
// button is disabled.
func (p *Picker) Format() (f Format, ok bool) {
	return p.format, p.hasFormat
}

// Output returns the working color in the active format, or "" when no
// format is enabled.
func (p *Picker) Output() string {
	if !p.hasFormat {
		return ""
	}
	return p.color.Text(p.format)
}

// Visible reports whether the popup is shown.
func (p *Picker) Visible() bool { return p.visible }

// Cleared reports whether the picker was cleared since the last save.
func (p *Picker) Cleared() bool { return p.cleared }

// SetColor parses text typed by the user and applies it. While the user is
// typing, the output field is not rewritten. Unparsable text is ignored
// and SetColor reports false.
func (p *Picker) SetColor(text string) bool {
	if p.destroyed {
		return false
	}
	c, ok := Parse(text)
	if !ok {
		p.logger().Debug("pickr: color text rejected", "input", text)
		return false
	}
	p.textInput = true
	p.apply(c)
	return true
}

// SetHSVA sets the working color. Out-of-range input is ignored and
// SetHSVA reports false. Setting the current color again reports true
// without notifying.
func (p *Picker) SetHSVA(h, s, v, a float64) bool {
	if p.destroyed {
		return false
	}
	c, err := FromHSVA(h, s, v, a)
	if err != nil {
		p.logger().Debug("pickr: color rejected", "error", err)
		return false
	}
	p.apply(c)
	return true
}

// apply replaces the working color and re-derives every handle from it.
func (p *Picker) apply(c HSVA) {
	if c == p.color {
		return
	}
	p.color = c
	p.syncHandles()
	p.changed()
}

// syncHandles moves every handle to the position that encodes the working
// color, reading track sizes fresh.
func (p *Picker) syncHandles() {
	var hue, opacity Size
	if p.controls.Hue.ok() {
		hue = p.controls.Hue.Track.Size()
	}
	if p.controls.Opacity.ok() {
		opacity = p.controls.Opacity.Track.Size()
	}
	pos := HandlePositions(p.color, p.controls.Palette.Track.Size(), hue, opacity)

	p.controls.Palette.Handle.Update(pos.Palette.X, pos.Palette.Y)
	if p.controls.Hue.ok() {
		p.controls.Hue.Handle.Update(pos.Hue.X, pos.Hue.Y)
	}
	if p.controls.Opacity.ok() {
		p.controls.Opacity.Handle.Update(pos.Opacity.X, pos.Opacity.Y)
	}
}

// changed publishes the working color to the view and the host.
func (p *Picker) changed() {
	p.view.SetPreview(p.color)
	p.writeOutput()
	p.opts.OnChange(p.color)
}

func (p *Picker) writeOutput() {
	if p.textInput || !p.hasFormat || !p.opts.Components.Output.Input {
		return
	}
	p.view.SetOutput(p.color.Text(p.format))
}

// BeginDrag hands output authority back to the picker. Hosts call it on
// pointer-down over any control so a later drag reformats the output.
func (p *Picker) BeginDrag() {
	p.textInput = false
}

// MovePalette handles a palette drag to (x, y) within its track.
func (p *Picker) MovePalette(x, y float64) {
	if p.destroyed {
		return
	}
	s, v := PaletteToSV(Pt(x, y), p.controls.Palette.Track.Size())
	p.dragged(p.color.WithSV(s, v))
}

// MoveHue handles a hue slider drag to y within its track. It is ignored
// when the hue component is disabled.
func (p *Picker) MoveHue(y float64) {
	if p.destroyed || !p.opts.Components.Hue {
		return
	}
	h := HueAt(y, p.controls.Hue.Track.Size().H)
	p.dragged(p.color.WithHue(h))
}

// MoveOpacity handles an opacity slider drag to y within its track. It is
// ignored when the opacity component is disabled.
func (p *Picker) MoveOpacity(y float64) {
	if p.destroyed || !p.opts.Components.Opacity {
		return
	}
	a := OpacityAt(y, p.controls.Opacity.Track.Size().H)
	p.dragged(p.color.WithAlpha(a))
}

// dragged merges a drag result. The dragged handle is already in place, so
// handles are not re-derived.
func (p *Picker) dragged(c HSVA) {
	p.textInput = false
	if c == p.color {
		p.writeOutput()
		return
	}
	p.color = c
	p.changed()
}

// SelectFormat switches the output format. Disabled formats are ignored.
func (p *Picker) SelectFormat(f Format) bool {
	if p.destroyed || !p.opts.Components.Output.Enabled(f) {
		return false
	}
	p.format, p.hasFormat = f, true
	if p.controls.Formats != nil {
		p.controls.Formats.Select(f)
	}
	p.textInput = false
	p.writeOutput()
	return true
}

// Save commits the working color as the last color and notifies OnSave.
// The popup is hidden unless it is always visible.
func (p *Picker) Save() bool {
	if p.destroyed {
		return false
	}
	p.saveColor()
	if !p.opts.AlwaysVisible {
		p.Hide()
	}
	return true
}

func (p *Picker) saveColor() {
	p.cleared = false
	p.view.SetCleared(false)

	p.last = p.color.Clone()
	p.view.SetSaved(p.last)

	saved := p.last
	p.logger().Info("pickr: color saved", "color", saved.Text(FormatRGBA))
	p.opts.OnSave(&saved)
}

// Clear marks the picker as having no color and calls OnSave with nil.
// The working color is kept.
func (p *Picker) Clear() bool {
	if p.destroyed {
		return false
	}
	p.cleared = true
	p.view.SetCleared(true)
	if !p.opts.AlwaysVisible {
		p.Hide()
	}
	p.logger().Info("pickr: color cleared")
	p.opts.OnSave(nil)
	return true
}

// RestoreSaved makes the last saved color the working color again.
func (p *Picker) RestoreSaved() bool {
	return p.SetHSVA(p.last.Components())
}

// Show opens the popup and places it.
func (p *Picker) Show() {
	if p.destroyed {
		return
	}
	p.visible = true
	p.view.SetVisible(true)
	p.reposition()
}

// Hide closes the popup.
func (p *Picker) Hide() {
	if p.destroyed {
		return
	}
	p.visible = false
	p.view.SetVisible(false)
}

// Toggle shows a hidden popup and hides a visible one. It does nothing
// when the popup is always visible.
func (p *Picker) Toggle() {
	if p.opts.AlwaysVisible {
		return
	}
	if p.visible {
		p.Hide()
	} else {
		p.Show()
	}
}

// Resize re-places the popup after the viewport changed.
func (p *Picker) Resize() {
	if p.destroyed {
		return
	}
	p.reposition()
}

func (p *Picker) reposition() {
	g := p.view.Geometry()
	off := Place(Placement{
		Anchor:       g.Anchor,
		Popup:        g.Popup,
		Current:      g.Current,
		Viewport:     g.Viewport,
		Align:        p.opts.Alignment,
		AppendToBody: p.opts.AppendToBody,
	})
	p.logger().Debug("pickr: popup placed", "top", off.Top, "left", off.Left)
	p.view.SetOffset(off)
}

// Destroy releases the controls. Afterwards every operation is a no-op.
func (p *Picker) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	for _, s := range []Slider{p.controls.Palette, p.controls.Hue, p.controls.Opacity} {
		if s.Handle != nil {
			s.Handle.Destroy()
		}
	}
	if p.controls.Formats != nil {
		p.controls.Formats.Destroy()
	}
}

// DestroyAndRemove destroys the picker and removes it from the host.
func (p *Picker) DestroyAndRemove() {
	p.Destroy()
	if !p.removed {
		p.removed = true
		p.view.Remove()
	}
}
