package color

import "math"

// HSVToRGB converts a hue in degrees and saturation/value in [0,1] to
// normalized RGB. A hue of 360 is the same as 0.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 60

	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch int(i) {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// RGBToHSV converts normalized RGB to a hue in degrees and saturation/value
// in [0,1]. Achromatic colors report hue 0.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	d := hi - lo

	v = hi
	if hi > 0 {
		s = d / hi
	}
	if d == 0 {
		return 0, s, v
	}

	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h * 60, s, v
}

// HSVToHSL converts HSV saturation/value to HSL saturation/lightness.
// Hue is shared between both models and passes through unchanged.
func HSVToHSL(s, v float64) (sl, l float64) {
	l = v * (1 - s/2)
	if l == 0 || l == 1 {
		return 0, l
	}
	return (v - l) / math.Min(l, 1-l), l
}

// HSLToHSV converts HSL saturation/lightness to HSV saturation/value.
func HSLToHSV(sl, l float64) (s, v float64) {
	v = l + sl*math.Min(l, 1-l)
	if v == 0 {
		return 0, 0
	}
	return 2 * (1 - l/v), v
}

// RGBToCMYK performs the naive subtractive conversion. Pure black
// reports k=1 with zero ink on the other plates.
func RGBToCMYK(r, g, b float64) (c, m, y, k float64) {
	k = 1 - math.Max(r, math.Max(g, b))
	if k >= 1 {
		return 0, 0, 0, 1
	}
	c = (1 - r - k) / (1 - k)
	m = (1 - g - k) / (1 - k)
	y = (1 - b - k) / (1 - k)
	return c, m, y, k
}

// CMYKToRGB is the inverse of RGBToCMYK.
func CMYKToRGB(c, m, y, k float64) (r, g, b float64) {
	return (1 - c) * (1 - k), (1 - m) * (1 - k), (1 - y) * (1 - k)
}

// ToU8 maps a normalized channel to [0,255], rounding half away from zero.
func ToU8(x float64) uint8 {
	if x <= 0 || math.IsNaN(x) {
		return 0
	}
	if x >= 1 {
		return 255
	}
	return uint8(math.Round(x * 255))
}

// Round rounds x half away from zero to the given number of decimal places.
func Round(x float64, places int) float64 {
	if places <= 0 {
		return math.Round(x)
	}
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// Clamp restricts x to [lo, hi]. NaN clamps to lo.
func Clamp(x, lo, hi float64) float64 {
	if x < lo || math.IsNaN(x) {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
