package pickr

// Track is the surface a handle moves in. Size is read on every
// computation, so a resized track takes effect on the next move.
type Track interface {
	Size() Size
}

// Draggable is a handle driven by a host drag primitive. The primitive
// clamps pointer positions to its track and forwards them to the picker's
// Move methods; Update repositions the handle without reporting a move.
type Draggable interface {
	Update(x, y float64)
	Destroy()
}

// Slider pairs a handle with its track.
type Slider struct {
	Handle Draggable
	Track  Track
}

func (s Slider) ok() bool {
	return s.Handle != nil && s.Track != nil
}

// Selectable is the host's format button group. Select marks the active
// button; clicks are forwarded to Picker.SelectFormat.
type Selectable interface {
	Select(f Format)
	Destroy()
}

// Controls are the interactive parts of a picker. Palette is required;
// Hue and Opacity are required when enabled in Components. Formats may be
// nil.
type Controls struct {
	Palette Slider
	Hue     Slider
	Opacity Slider
	Formats Selectable
}

// Geometry is the layout the host reports for placement.
type Geometry struct {
	// Anchor is the button the popup is attached to.
	Anchor Rect
	// Popup is measured at the Current offset.
	Popup    Rect
	Current  Offset
	Viewport Size
}

// View is everything the picker writes to or reads from the host surface.
type View interface {
	// SetOutput replaces the text of the result field.
	SetOutput(text string)
	// SetPreview shows the working color on the current swatch, the
	// palette handle and the palette gradient.
	SetPreview(current HSVA)
	// SetSaved shows the last saved color on its swatch and the anchor.
	SetSaved(last HSVA)
	// SetCleared toggles the anchor's no-color marker.
	SetCleared(cleared bool)
	SetVisible(visible bool)
	SetOffset(o Offset)
	Geometry() Geometry
	// Remove detaches the whole widget from the host.
	Remove()
}
