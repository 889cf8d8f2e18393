package render

import (
	"image/color"
	"math"
)

// rdYlGn holds the anchor colors of the red-yellow-green diverging scale;
// ratioColor interpolates linearly between neighbouring anchors.
var rdYlGn = []color.RGBA{
	{R: 0xa5, G: 0x00, B: 0x26, A: 0xff},
	{R: 0xd7, G: 0x30, B: 0x27, A: 0xff},
	{R: 0xf4, G: 0x6d, B: 0x43, A: 0xff},
	{R: 0xfd, G: 0xae, B: 0x61, A: 0xff},
	{R: 0xfe, G: 0xe0, B: 0x8b, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xbf, A: 0xff},
	{R: 0xd9, G: 0xef, B: 0x8b, A: 0xff},
	{R: 0xa6, G: 0xd9, B: 0x6a, A: 0xff},
	{R: 0x66, G: 0xbd, B: 0x63, A: 0xff},
	{R: 0x1a, G: 0x98, B: 0x50, A: 0xff},
	{R: 0x00, G: 0x68, B: 0x37, A: 0xff},
}

var (
	// missingColor fills regions without expressed votes.
	missingColor = color.RGBA{R: 0xbd, G: 0xbd, B: 0xbd, A: 0xff}
	borderColor  = color.RGBA{R: 0x45, G: 0x45, B: 0x45, A: 0xff}
)

// ratioColor maps a ratio in [0, 1] onto the diverging scale. Out-of-range
// values clamp to the scale ends, NaN renders neutral.
func ratioColor(ratio float64) color.RGBA {
	if math.IsNaN(ratio) {
		return missingColor
	}
	if ratio <= 0 {
		return rdYlGn[0]
	}
	if ratio >= 1 {
		return rdYlGn[len(rdYlGn)-1]
	}

	pos := ratio * float64(len(rdYlGn)-1)
	i := int(pos)

	return lerpColor(rdYlGn[i], rdYlGn[i+1], pos-float64(i))
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}

	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}
