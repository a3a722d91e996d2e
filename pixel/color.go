package pixel

import "image/color"

// LitModel converts any color to a [Lit].
var LitModel color.Model = color.ModelFunc(litModel)

var (
	Off = Lit{false}
	On  = Lit{true}
)

// Glass colors.
var (
	Background = color.RGBA{R: 0xb8, G: 0xc4, B: 0xa8, A: 0xff}
	Segment    = color.RGBA{R: 0x1a, G: 0x1e, B: 0x1a, A: 0xff}
)

// Lit is the state of one LCD pixel; a lit pixel is a driven, dark segment.
type Lit struct {
	On bool
}

func (c Lit) RGBA() (r, g, b, a uint32) {
	if c.On {
		return Segment.RGBA()
	}
	return Background.RGBA()
}

// litModel treats anything darker than mid gray as a driven segment.
func litModel(c color.Color) color.Color {
	if _, ok := c.(Lit); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Off
	}

	// JFIF luma coefficients, 19595 + 38470 + 7471 = 65536.
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 16

	return Lit{On: y < 0x8000}
}
