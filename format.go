package pickr

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	icolor "github.com/gogpu/pickr/internal/color"
)

// Format selects one of the textual color representations.
type Format uint8

const (
	// FormatHEX renders "#rrggbb". Alpha is dropped.
	FormatHEX Format = iota
	// FormatRGBA renders "rgba(r, g, b, a)".
	FormatRGBA
	// FormatHSLA renders "hsla(h, s%, l%, a)".
	FormatHSLA
	// FormatHSVA renders "hsva(h, s%, v%, a)".
	FormatHSVA
	// FormatCMYK renders "cmyk(c%, m%, y%, k%)". Alpha is dropped.
	FormatCMYK
)

var formatNames = [...]string{
	FormatHEX:  "HEX",
	FormatRGBA: "RGBA",
	FormatHSLA: "HSLA",
	FormatHSVA: "HSVA",
	FormatCMYK: "CMYK",
}

var formatters = [...]func(HSVA) string{
	FormatHEX:  HSVA.HEX,
	FormatRGBA: formatRGBA,
	FormatHSLA: formatHSLA,
	FormatHSVA: formatHSVA,
	FormatCMYK: formatCMYK,
}

// Formats returns every format in button order.
func Formats() []Format {
	return []Format{FormatHEX, FormatRGBA, FormatHSLA, FormatHSVA, FormatCMYK}
}

// String returns the format name.
func (f Format) String() string {
	if !f.valid() {
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
	return formatNames[f]
}

func (f Format) valid() bool {
	return int(f) < len(formatNames)
}

// ParseFormat returns the format with the given name, ignoring case.
// "rgb", "hsl" and "hsv" are accepted as aliases.
func ParseFormat(name string) (Format, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	switch n {
	case "RGB":
		return FormatRGBA, nil
	case "HSL":
		return FormatHSLA, nil
	case "HSV":
		return FormatHSVA, nil
	}
	for i, s := range formatNames {
		if s == n {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown format %q", ErrInvalidOption, name)
}

// Text renders c in format f. Unknown formats render as an empty string.
func (c HSVA) Text(f Format) string {
	if !f.valid() {
		return ""
	}
	return formatters[f](c)
}

func formatRGBA(c HSVA) string {
	rgb := c.rgb8()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", rgb.R, rgb.G, rgb.B, formatAlpha(c.a))
}

func formatHSLA(c HSVA) string {
	h, s, l, a := c.HSLA()
	return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", roundInt(h), roundInt(s), roundInt(l), formatAlpha(a))
}

func formatHSVA(c HSVA) string {
	return fmt.Sprintf("hsva(%d, %d%%, %d%%, %s)", roundInt(c.h), roundInt(c.s), roundInt(c.v), formatAlpha(c.a))
}

func formatCMYK(c HSVA) string {
	cy, m, y, k := c.CMYK()
	return fmt.Sprintf("cmyk(%d%%, %d%%, %d%%, %d%%)", roundInt(cy), roundInt(m), roundInt(y), roundInt(k))
}

// formatAlpha prints alpha with at most two decimals and no trailing zeros.
func formatAlpha(a float64) string {
	return strconv.FormatFloat(icolor.Round(a, 2), 'f', -1, 64)
}

func roundInt(x float64) int {
	return int(math.Round(x))
}
