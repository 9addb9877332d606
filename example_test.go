package pickr_test

import (
	"fmt"

	"github.com/gogpu/pickr"
)

func ExampleParse() {
	c, ok := pickr.Parse("hsla(120, 50%, 50%, 0.5)")
	fmt.Println(ok)
	fmt.Println(c.Text(pickr.FormatRGBA))
	fmt.Println(c.HEX())

	_, ok = pickr.Parse("rgb 300 0 0")
	fmt.Println(ok)
	// Output:
	// true
	// rgba(64, 191, 64, 0.5)
	// #40bf40
	// false
}

func ExampleHSVA_Text() {
	c, _ := pickr.FromHSVA(210, 50, 80, 0.25)
	for _, f := range pickr.Formats() {
		fmt.Printf("%-4v %s\n", f, c.Text(f))
	}
	// Output:
	// HEX  #6699cc
	// RGBA rgba(102, 153, 204, 0.25)
	// HSLA hsla(210, 50%, 60%, 0.25)
	// HSVA hsva(210, 50%, 80%, 0.25)
	// CMYK cmyk(50%, 25%, 0%, 20%)
}

func ExamplePaletteToSV() {
	s, v := pickr.PaletteToSV(pickr.Pt(50, 25), pickr.Size{W: 200, H: 100})
	fmt.Println(s, v)
	fmt.Println(pickr.HueAt(75, 300), pickr.OpacityAt(50, 200))
	// Output:
	// 25 75
	// 90 0.25
}

func ExamplePlace() {
	off := pickr.Place(pickr.Placement{
		Anchor:   pickr.Rect{X: 780, Y: 10, W: 20, H: 30},
		Popup:    pickr.Rect{X: 780, Y: 45, W: 250, H: 300},
		Viewport: pickr.Size{W: 800, H: 600},
	})
	fmt.Println(off.Top, off.Left)
	// Output: 35 -230
}

type handle struct{ x, y float64 }

func (h *handle) Update(x, y float64) { h.x, h.y = x, y }
func (h *handle) Destroy()            {}

type track pickr.Size

func (t track) Size() pickr.Size { return pickr.Size(t) }

type view struct{ output string }

func (v *view) SetOutput(text string)    { v.output = text }
func (v *view) SetPreview(pickr.HSVA)    {}
func (v *view) SetSaved(pickr.HSVA)      {}
func (v *view) SetCleared(bool)          {}
func (v *view) SetVisible(bool)          {}
func (v *view) SetOffset(pickr.Offset)   {}
func (v *view) Geometry() pickr.Geometry { return pickr.Geometry{} }
func (v *view) Remove()                  {}

func ExampleNew() {
	v := &view{}
	palette := &handle{}
	controls := pickr.Controls{
		Palette: pickr.Slider{Handle: palette, Track: track{W: 200, H: 100}},
		Hue:     pickr.Slider{Handle: &handle{}, Track: track{H: 360}},
		Opacity: pickr.Slider{Handle: &handle{}, Track: track{H: 100}},
	}

	p, err := pickr.New(v, controls,
		pickr.WithDefaultColor("#42445a"),
		pickr.WithOnSave(func(c *pickr.HSVA) {
			if c != nil {
				fmt.Println("saved", c.HEX())
			}
		}),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v.output)

	p.MovePalette(100, 0)
	p.SelectFormat(pickr.FormatRGBA)
	fmt.Println(v.output)
	p.Save()
	// Output:
	// saved #42445a
	// #42445a
	// rgba(128, 138, 255, 1)
	// saved #808aff
}
