package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/pickr"
)

// config is the -config file: picker options plus the layout a real host
// would measure.
//
//	picker:
//	  default: "#42445a"
//	  alignment: right
//	palette: {w: 200, h: 100}
//	hue: 100
//	opacity: 100
//	anchor: {x: 10, y: 10, w: 30, h: 30}
//	popup: {w: 250, h: 300}
//	viewport: {w: 800, h: 600}
type config struct {
	Picker   pickr.Options `yaml:"picker"`
	Palette  size          `yaml:"palette"`
	Hue      float64       `yaml:"hue"`
	Opacity  float64       `yaml:"opacity"`
	Anchor   rect          `yaml:"anchor"`
	Popup    size          `yaml:"popup"`
	Viewport size          `yaml:"viewport"`
}

type size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

func (s size) toSize() pickr.Size { return pickr.Size{W: s.W, H: s.H} }

type rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

func (r rect) toRect() pickr.Rect { return pickr.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H} }

func defaultConfig() config {
	return config{
		Palette:  size{W: 200, H: 100},
		Hue:      100,
		Opacity:  100,
		Anchor:   rect{X: 10, Y: 10, W: 30, H: 30},
		Popup:    size{W: 250, H: 300},
		Viewport: size{W: 800, H: 600},
	}
}

// loadConfig reads path over the defaults. An empty path yields the
// defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
