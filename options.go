package pickr

import "log/slog"

// Components selects which parts of the picker are enabled. The palette is
// always present. A zero Components enables everything.
type Components struct {
	Preview bool
	Opacity bool
	Hue     bool
	Output  Output
}

// Output selects the text field, the format buttons and the clear button.
type Output struct {
	Input bool
	HEX   bool
	RGBA  bool
	HSLA  bool
	HSVA  bool
	CMYK  bool
	Clear bool
}

// AllComponents enables every part of the picker.
func AllComponents() Components {
	return Components{
		Preview: true,
		Opacity: true,
		Hue:     true,
		Output: Output{
			Input: true,
			HEX:   true,
			RGBA:  true,
			HSLA:  true,
			HSVA:  true,
			CMYK:  true,
			Clear: true,
		},
	}
}

// Enabled reports whether the button for f is enabled.
func (o Output) Enabled(f Format) bool {
	switch f {
	case FormatHEX:
		return o.HEX
	case FormatRGBA:
		return o.RGBA
	case FormatHSLA:
		return o.HSLA
	case FormatHSVA:
		return o.HSVA
	case FormatCMYK:
		return o.CMYK
	}
	return false
}

// first returns the first enabled format in button order.
func (o Output) first() (Format, bool) {
	for _, f := range Formats() {
		if o.Enabled(f) {
			return f, true
		}
	}
	return 0, false
}

// Options configures a Picker.
type Options struct {
	// DefaultColor is parsed with Parse when the picker is created.
	DefaultColor string

	// Alignment is the preferred horizontal popup alignment.
	Alignment Alignment

	// AlwaysVisible keeps the popup open; Save and Clear do not hide it.
	AlwaysVisible bool

	// AppendToBody positions the popup relative to the document root
	// instead of the anchor's parent.
	AppendToBody bool

	Components Components

	// OnChange is called after every change of the working color.
	OnChange func(c HSVA)

	// OnSave is called with the saved color, or nil when cleared.
	OnSave func(c *HSVA)

	// Logger overrides the package logger for this picker.
	Logger *slog.Logger
}

// Option configures a Picker during creation.
//
// Example:
//
//	p, err := pickr.New(view, controls,
//	    pickr.WithDefaultColor("#42445a"),
//	    pickr.WithAlignment(pickr.AlignRight),
//	    pickr.WithOnSave(func(c *pickr.HSVA) { ... }),
//	)
type Option func(*Options)

// defaultOptions returns the options a picker starts from.
func defaultOptions() Options {
	return Options{
		DefaultColor: "fff",
		Alignment:    AlignMiddle,
	}
}

// applyDefaults fills every unset field so the rest of the package never
// has to nil-check.
func applyDefaults(o Options) Options {
	if o.DefaultColor == "" {
		o.DefaultColor = "fff"
	}
	if o.Components == (Components{}) {
		o.Components = AllComponents()
	}
	if o.OnChange == nil {
		o.OnChange = func(HSVA) {}
	}
	if o.OnSave == nil {
		o.OnSave = func(*HSVA) {}
	}
	return o
}

// WithOptions replaces the whole option set, typically one produced by
// LoadOptions. Options given after it still apply.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}

// WithDefaultColor sets the color applied when the picker is created.
func WithDefaultColor(s string) Option {
	return func(o *Options) {
		o.DefaultColor = s
	}
}

// WithAlignment sets the preferred horizontal popup alignment.
func WithAlignment(a Alignment) Option {
	return func(o *Options) {
		o.Alignment = a
	}
}

// WithAlwaysVisible keeps the popup permanently open.
func WithAlwaysVisible() Option {
	return func(o *Options) {
		o.AlwaysVisible = true
	}
}

// WithAppendToBody positions the popup relative to the document root.
func WithAppendToBody() Option {
	return func(o *Options) {
		o.AppendToBody = true
	}
}

// WithComponents selects the enabled parts of the picker.
func WithComponents(c Components) Option {
	return func(o *Options) {
		o.Components = c
	}
}

// WithOnChange registers the change callback.
func WithOnChange(fn func(HSVA)) Option {
	return func(o *Options) {
		o.OnChange = fn
	}
}

// WithOnSave registers the save callback. It receives nil on Clear.
func WithOnSave(fn func(*HSVA)) Option {
	return func(o *Options) {
		o.OnSave = fn
	}
}

// WithLogger sets a logger for this picker only.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
