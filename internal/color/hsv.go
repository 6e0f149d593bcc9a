package color

import "math"

// RGBToHSV converts an RGB triple to hue in degrees [0,360) and saturation
// and value in [0,1]. Achromatic input (r == g == b) has hue 0.
func RGBToHSV(r, g, b uint8) (h, s, v float64) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	maxC := max(rf, gf, bf)
	minC := min(rf, gf, bf)
	delta := maxC - minC

	switch {
	case delta == 0:
		h = 0
	case maxC == rf:
		h = 60 * math.Mod((gf-bf)/delta, 6)
	case maxC == gf:
		h = 60 * ((bf-rf)/delta + 2)
	default:
		h = 60 * ((rf-gf)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	if maxC > 0 {
		s = delta / maxC
	}
	return h, s, maxC
}

// HSVToRGB converts hue in degrees and saturation and value in percent
// [0,100] to RGB. Hue is wrapped into [0,360); saturation and value are
// clamped into [0,100]. Channels are rounded half to even.
func HSVToRGB(h, s, v float64) (r, g, b uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		// -ε wraps to 360 after rounding.
		h = 0
	}
	s = clampUnit(s / 100)
	v = clampUnit(v / 100)

	c := v * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	m := v - c

	var rf, gf, bf float64
	switch {
	case hp < 1:
		rf, gf, bf = c, x, 0
	case hp < 2:
		rf, gf, bf = x, c, 0
	case hp < 3:
		rf, gf, bf = 0, c, x
	case hp < 4:
		rf, gf, bf = 0, x, c
	case hp < 5:
		rf, gf, bf = x, 0, c
	case hp < 6:
		rf, gf, bf = c, 0, x
	}

	return roundChannel(rf + m), roundChannel(gf + m), roundChannel(bf + m)
}

// clampUnit clamps v into [0,1]; NaN maps to 0.
func clampUnit(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// roundChannel scales a unit value to [0,255] rounding half to even.
func roundChannel(v float64) uint8 {
	return Saturate(math.RoundToEven(v * 255))
}
