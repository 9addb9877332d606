package pickr

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/width"

	icolor "github.com/gogpu/pickr/internal/color"
)

// Parse reads a color typed by a user.
//
// Accepted forms, case-insensitive and with any mix of spaces, commas,
// slashes, colons, semicolons or parentheses between numbers:
//
//	#f0a  f0a  #f0a8  #ff00aa  ff00aa80
//	rgb 10 10 200        rgba(10, 10, 200, 0.5)
//	hsl 120 50% 50%      hsla(120, 50%, 50%, 0.5)
//	hsv 120 50 75        hsva 10 20 5 0.5
//	cmyk 0 100 100 0
//	rebeccapurple        transparent
//
// A missing alpha defaults to 1; a percentage alpha is divided by 100.
// Red, green and blue are plain 0-255 numbers; a '%' on them is rejected.
// Keywords are the SVG color names plus rebeccapurple. Full-width
// characters are accepted. Parse reports false for anything malformed or
// out of range, and never returns a partial color.
func Parse(input string) (HSVA, bool) {
	s := strings.ToLower(strings.TrimSpace(width.Narrow.String(input)))
	if s == "" {
		return HSVA{}, false
	}
	if c, ok := parseHex(s); ok {
		return c, true
	}
	if c, ok := parseKeyword(s); ok {
		return c, true
	}

	name, args, ok := splitFunction(s)
	if !ok {
		return HSVA{}, false
	}
	switch name {
	case "rgb", "rgba":
		return parseRGB(args)
	case "hsl", "hsla":
		return parseHSL(args)
	case "hsv", "hsva":
		return parseHSV(args)
	case "cmyk":
		return parseCMYK(args)
	}
	return HSVA{}, false
}

// parseHex decodes 3, 4, 6 or 8 hex digits with an optional '#'.
func parseHex(s string) (HSVA, bool) {
	s = strings.TrimPrefix(s, "#")

	var digits [8]uint8
	if len(s) > len(digits) {
		return HSVA{}, false
	}
	for i := 0; i < len(s); i++ {
		d, ok := hexNibble(s[i])
		if !ok {
			return HSVA{}, false
		}
		digits[i] = d
	}

	var r, g, b, a uint8
	a = 255
	switch len(s) {
	case 3: // RGB
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
	case 4: // RGBA
		r, g, b, a = digits[0]*17, digits[1]*17, digits[2]*17, digits[3]*17
	case 6: // RRGGBB
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
	case 8: // RRGGBBAA
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
		a = digits[6]<<4 | digits[7]
	default:
		return HSVA{}, false
	}
	return fromRGB8(icolor.RGB8{R: r, G: g, B: b}, float64(a)/255), true
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func parseKeyword(s string) (HSVA, bool) {
	switch s {
	case "transparent":
		return HSVA{}, true
	case "rebeccapurple":
		return fromRGB8(icolor.RGB8{R: 0x66, G: 0x33, B: 0x99}, 1), true
	}
	c, ok := colornames.Map[s]
	if !ok {
		return HSVA{}, false
	}
	return fromRGB8(icolor.RGB8{R: c.R, G: c.G, B: c.B}, float64(c.A)/255), true
}

// number is one numeric argument; pct records a trailing '%'.
type number struct {
	val float64
	pct bool
}

// splitFunction splits "name<sep>args" into the function name and its
// numeric arguments. At least one separator must follow the name.
func splitFunction(s string) (string, []number, bool) {
	i := 0
	for i < len(s) && 'a' <= s[i] && s[i] <= 'z' {
		i++
	}
	if i == 0 || i == len(s) || !isSeparator(rune(s[i])) {
		return "", nil, false
	}

	fields := strings.FieldsFunc(s[i:], isSeparator)
	args := make([]number, 0, len(fields))
	for _, f := range fields {
		n, ok := parseNumber(f)
		if !ok {
			return "", nil, false
		}
		args = append(args, n)
	}
	return s[:i], args, true
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', ',', '/', ':', ';', '(', ')':
		return true
	}
	return false
}

func parseNumber(f string) (number, bool) {
	var n number
	if strings.HasSuffix(f, "%") {
		n.pct = true
		f = f[:len(f)-1]
	}
	if f == "" {
		return n, false
	}
	// Plain decimal notation only: no exponents, hex floats, inf or nan.
	for i := 0; i < len(f); i++ {
		c := f[i]
		if (c < '0' || c > '9') && c != '.' && c != '-' && c != '+' {
			return n, false
		}
	}
	v, err := strconv.ParseFloat(f, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return n, false
	}
	n.val = v
	return n, true
}

func inRange(x, lo, hi float64) bool {
	return x >= lo && x <= hi
}

// alphaArg returns the optional fourth argument as an alpha in [0, 1].
func alphaArg(args []number) (float64, bool) {
	if len(args) < 4 {
		return 1, true
	}
	a := args[3].val
	if args[3].pct {
		a /= 100
	}
	return a, inRange(a, 0, 1)
}

func parseRGB(args []number) (HSVA, bool) {
	if len(args) != 3 && len(args) != 4 {
		return HSVA{}, false
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		if args[i].pct || !inRange(args[i].val, 0, 255) {
			return HSVA{}, false
		}
		rgb[i] = uint8(math.Round(args[i].val))
	}
	a, ok := alphaArg(args)
	if !ok {
		return HSVA{}, false
	}
	return fromRGB8(icolor.RGB8{R: rgb[0], G: rgb[1], B: rgb[2]}, a), true
}

// hueAndPercents validates the hue and two percentage arguments shared by
// the hsl and hsv grammars.
func hueAndPercents(args []number) (h, p1, p2, a float64, ok bool) {
	if len(args) != 3 && len(args) != 4 {
		return 0, 0, 0, 0, false
	}
	h, p1, p2 = args[0].val, args[1].val, args[2].val
	if !inRange(h, 0, MaxHue) || !inRange(p1, 0, 100) || !inRange(p2, 0, 100) {
		return 0, 0, 0, 0, false
	}
	a, ok = alphaArg(args)
	return h, p1, p2, a, ok
}

func parseHSL(args []number) (HSVA, bool) {
	h, sl, l, a, ok := hueAndPercents(args)
	if !ok {
		return HSVA{}, false
	}
	s, v := icolor.HSLToHSV(sl/100, l/100)
	return clampHSVA(h, s*100, v*100, a), true
}

func parseHSV(args []number) (HSVA, bool) {
	h, s, v, a, ok := hueAndPercents(args)
	if !ok {
		return HSVA{}, false
	}
	return HSVA{h: h, s: s, v: v, a: a}, true
}

func parseCMYK(args []number) (HSVA, bool) {
	if len(args) != 4 {
		return HSVA{}, false
	}
	for _, n := range args {
		if !inRange(n.val, 0, 100) {
			return HSVA{}, false
		}
	}
	r, g, b := icolor.CMYKToRGB(args[0].val/100, args[1].val/100, args[2].val/100, args[3].val/100)
	return fromRGB8(icolor.ToRGB8(r, g, b), 1), true
}
