package pickr

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML schema of Options. Callbacks and the logger have
// no file representation.
type fileConfig struct {
	Default       string          `yaml:"default"`
	Alignment     string          `yaml:"alignment"`
	AlwaysVisible bool            `yaml:"always_visible"`
	AppendToBody  bool            `yaml:"append_to_body"`
	Components    *fileComponents `yaml:"components"`
}

type fileComponents struct {
	Preview bool       `yaml:"preview"`
	Opacity bool       `yaml:"opacity"`
	Hue     bool       `yaml:"hue"`
	Output  fileOutput `yaml:"output"`
}

type fileOutput struct {
	Input bool `yaml:"input"`
	HEX   bool `yaml:"hex"`
	RGBA  bool `yaml:"rgba"`
	HSLA  bool `yaml:"hsla"`
	HSVA  bool `yaml:"hsva"`
	CMYK  bool `yaml:"cmyk"`
	Clear bool `yaml:"clear"`
}

// LoadOptions decodes options from YAML:
//
//	default: "#42445a"
//	alignment: right
//	always_visible: false
//	append_to_body: true
//	components:
//	  preview: true
//	  hue: true
//	  output: {input: true, hex: true, rgba: true}
//
// Keys that are absent keep their zero value. An empty document yields
// zero Options. A components block with every flag false decodes to a zero
// Components, which New treats as every component enabled; at least one
// flag must be true to disable the others.
func LoadOptions(data []byte) (Options, error) {
	var o Options
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Options{}, fmt.Errorf("pickr: load options: %w", err)
	}
	return o, nil
}

// UnmarshalYAML implements yaml.Unmarshaler so Options can be embedded in
// larger configuration documents. Fields absent from the node are left
// unchanged.
func (o *Options) UnmarshalYAML(value *yaml.Node) error {
	fc := fileConfig{
		Default:       o.DefaultColor,
		Alignment:     o.Alignment.String(),
		AlwaysVisible: o.AlwaysVisible,
		AppendToBody:  o.AppendToBody,
	}
	if err := value.Decode(&fc); err != nil {
		return err
	}

	align, err := ParseAlignment(fc.Alignment)
	if err != nil {
		return err
	}
	if fc.Default != "" {
		if _, ok := Parse(fc.Default); !ok {
			return fmt.Errorf("%w: unparsable default color %q", ErrInvalidOption, fc.Default)
		}
	}

	o.DefaultColor = fc.Default
	o.Alignment = align
	o.AlwaysVisible = fc.AlwaysVisible
	o.AppendToBody = fc.AppendToBody
	if fc.Components != nil {
		c := fc.Components
		o.Components = Components{
			Preview: c.Preview,
			Opacity: c.Opacity,
			Hue:     c.Hue,
			Output: Output{
				Input: c.Output.Input,
				HEX:   c.Output.HEX,
				RGBA:  c.Output.RGBA,
				HSLA:  c.Output.HSLA,
				HSVA:  c.Output.HSVA,
				CMYK:  c.Output.CMYK,
				Clear: c.Output.Clear,
			},
		}
	}
	return nil
}
