package pickr

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

// Verify at compile time that HSVA implements color.Color.
var _ color.Color = HSVA{}

func mustHSVA(t *testing.T, h, s, v, a float64) HSVA {
	t.Helper()
	c, err := FromHSVA(h, s, v, a)
	if err != nil {
		t.Fatalf("FromHSVA(%v, %v, %v, %v): %v", h, s, v, a, err)
	}
	return c
}

func absDiff(a, b float64) float64 {
	return math.Abs(a - b)
}

func TestFromHSVA_Domain(t *testing.T) {
	tests := []struct {
		name       string
		h, s, v, a float64
		field      string
	}{
		{"negative hue", -1, 0, 0, 1, "hue"},
		{"hue above 360", 360.5, 0, 0, 1, "hue"},
		{"saturation above 100", 0, 101, 0, 1, "saturation"},
		{"negative value", 0, 0, -0.1, 1, "value"},
		{"alpha above 1", 0, 0, 0, 1.5, "alpha"},
		{"NaN hue", math.NaN(), 0, 0, 1, "hue"},
		{"NaN alpha", 0, 0, 0, math.NaN(), "alpha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromHSVA(tt.h, tt.s, tt.v, tt.a)
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("FromHSVA() error = %v, want ErrOutOfRange", err)
			}
			var re *RangeError
			if !errors.As(err, &re) || re.Field != tt.field {
				t.Errorf("FromHSVA() error = %v, want RangeError for %s", err, tt.field)
			}
		})
	}
}

func TestFromHSVA_Bounds(t *testing.T) {
	for _, tc := range [][4]float64{
		{360, 100, 100, 1},
		{0, 0, 0, 0},
		{180, 50, 50, 0.5},
	} {
		c, err := FromHSVA(tc[0], tc[1], tc[2], tc[3])
		if err != nil {
			t.Fatalf("FromHSVA(%v) error = %v", tc, err)
		}
		h, s, v, a := c.Components()
		if h != tc[0] || s != tc[1] || v != tc[2] || a != tc[3] {
			t.Errorf("Components() = (%v, %v, %v, %v), want %v", h, s, v, a, tc)
		}
	}
}

func TestHSVA_Text(t *testing.T) {
	tests := []struct {
		name       string
		h, s, v, a float64
		hex        string
		rgba       string
		hsla       string
		hsva       string
		cmyk       string
	}{
		{
			name: "red", h: 0, s: 100, v: 100, a: 1,
			hex:  "#ff0000",
			rgba: "rgba(255, 0, 0, 1)",
			hsla: "hsla(0, 100%, 50%, 1)",
			hsva: "hsva(0, 100%, 100%, 1)",
			cmyk: "cmyk(0%, 100%, 100%, 0%)",
		},
		{
			name: "white", h: 0, s: 0, v: 100, a: 1,
			hex:  "#ffffff",
			rgba: "rgba(255, 255, 255, 1)",
			hsla: "hsla(0, 0%, 100%, 1)",
			hsva: "hsva(0, 0%, 100%, 1)",
			cmyk: "cmyk(0%, 0%, 0%, 0%)",
		},
		{
			name: "black", h: 0, s: 0, v: 0, a: 1,
			hex:  "#000000",
			rgba: "rgba(0, 0, 0, 1)",
			hsla: "hsla(0, 0%, 0%, 1)",
			hsva: "hsva(0, 0%, 0%, 1)",
			cmyk: "cmyk(0%, 0%, 0%, 100%)",
		},
		{
			name: "translucent steel blue", h: 210, s: 50, v: 80, a: 0.25,
			hex:  "#6699cc",
			rgba: "rgba(102, 153, 204, 0.25)",
			hsla: "hsla(210, 50%, 60%, 0.25)",
			hsva: "hsva(210, 50%, 80%, 0.25)",
			cmyk: "cmyk(50%, 25%, 0%, 20%)",
		},
		{
			name: "alpha rounds to two decimals", h: 120, s: 100, v: 100, a: 0.125,
			hex:  "#00ff00",
			rgba: "rgba(0, 255, 0, 0.13)",
			hsla: "hsla(120, 100%, 50%, 0.13)",
			hsva: "hsva(120, 100%, 100%, 0.13)",
			cmyk: "cmyk(100%, 0%, 100%, 0%)",
		},
		{
			name: "fractional state rounds on output", h: 359.6, s: 49.5, v: 10.4, a: 1,
			hex:  "#1b0d0d",
			rgba: "rgba(27, 13, 13, 1)",
			hsla: "hsla(360, 33%, 8%, 1)",
			hsva: "hsva(360, 50%, 10%, 1)",
			cmyk: "cmyk(0%, 52%, 52%, 89%)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustHSVA(t, tt.h, tt.s, tt.v, tt.a)
			for f, want := range map[Format]string{
				FormatHEX:  tt.hex,
				FormatRGBA: tt.rgba,
				FormatHSLA: tt.hsla,
				FormatHSVA: tt.hsva,
				FormatCMYK: tt.cmyk,
			} {
				if got := c.Text(f); got != want {
					t.Errorf("Text(%v) = %q, want %q", f, got, want)
				}
			}
		})
	}
}

// TestHSVA_HEXDropsAlpha documents that HEX is an opaque display format.
func TestHSVA_HEXDropsAlpha(t *testing.T) {
	opaque := mustHSVA(t, 210, 50, 80, 1)
	transparent := mustHSVA(t, 210, 50, 80, 0)
	if opaque.HEX() != transparent.HEX() {
		t.Errorf("HEX() differs by alpha: %q vs %q", opaque.HEX(), transparent.HEX())
	}
}

func TestHSVA_String(t *testing.T) {
	c := mustHSVA(t, 10, 20, 5, 0.5)
	if got, want := c.String(), "hsva(10, 20%, 5%, 0.5)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestHSVA_ColorInterface(t *testing.T) {
	c := mustHSVA(t, 0, 100, 100, 0.5)
	n := c.NRGBA()
	if n != (color.NRGBA{R: 255, G: 0, B: 0, A: 128}) {
		t.Errorf("NRGBA() = %v", n)
	}
	r, g, b, a := c.RGBA()
	wr, wg, wb, wa := n.RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)", r, g, b, a, wr, wg, wb, wa)
	}
}

func TestFromColor(t *testing.T) {
	c := FromColor(color.NRGBA{R: 102, G: 153, B: 204, A: 255})
	const tolerance = 1e-9
	if absDiff(c.H(), 210) > tolerance || absDiff(c.S(), 50) > tolerance || absDiff(c.V(), 80) > tolerance || c.A() != 1 {
		t.Errorf("FromColor() = %v", c)
	}

	// Premultiplied input is un-premultiplied first.
	half := FromColor(color.RGBA{R: 128, G: 0, B: 0, A: 128})
	if r, _, _ := half.RGB(); r != 255 {
		t.Errorf("FromColor(premultiplied) red = %d, want 255", r)
	}
}

func TestHSVA_WithClamps(t *testing.T) {
	c := mustHSVA(t, 100, 50, 50, 0.5)
	if got := c.WithHue(400).H(); got != 360 {
		t.Errorf("WithHue(400).H() = %v, want 360", got)
	}
	if got := c.WithSV(-5, 120); got.S() != 0 || got.V() != 100 {
		t.Errorf("WithSV(-5, 120) = %v", got)
	}
	if got := c.WithAlpha(2).A(); got != 1 {
		t.Errorf("WithAlpha(2).A() = %v, want 1", got)
	}
	if got := c.WithAlpha(0.2); got.H() != 100 || got.S() != 50 || got.V() != 50 {
		t.Errorf("WithAlpha changed other components: %v", got)
	}
}

func TestHSVA_CloneIsIndependent(t *testing.T) {
	c := mustHSVA(t, 100, 50, 50, 0.5)
	d := c.Clone()
	c = c.WithHue(10)
	if c.H() != 10 || d.H() != 100 {
		t.Errorf("clone followed the original: H() = %v", d.H())
	}
	if d != mustHSVA(t, 100, 50, 50, 0.5) {
		t.Error("clone is not equal to the value it was taken from")
	}
}

func TestHSVA_ZeroValue(t *testing.T) {
	var c HSVA
	if got := c.Text(FormatRGBA); got != "rgba(0, 0, 0, 0)" {
		t.Errorf("zero value = %q", got)
	}
	if Black.A() != 1 || Black.V() != 0 {
		t.Errorf("Black = %v", Black)
	}
}
