package heatmap

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type RGB struct {
	R, G, B uint8
}

func (c RGB) Hex() string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// coolwarm anchors: blue at 0, light grey at 0.5, red at 1
var coolwarm = [3]colorful.Color{
	mustHex("#3b4cc0"),
	mustHex("#dddddd"),
	mustHex("#b40426"),
}

// CoolWarm maps v in [0, 1] onto a blue-grey-red diverging ramp, blending
// in CIE L*a*b* between the anchors. Values outside the range are clamped.
func CoolWarm(v float64) RGB {
	if math.IsNaN(v) {
		v = 0.5
	}
	v = math.Max(0, math.Min(1, v))

	lo, hi, f := coolwarm[0], coolwarm[1], v*2
	if v > 0.5 {
		lo, hi, f = coolwarm[1], coolwarm[2], (v-0.5)*2
	}
	return fromColorful(lo.BlendLab(hi, f))
}
