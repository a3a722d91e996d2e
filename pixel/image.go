package pixel

import (
	"image"
	"image/color"
)

// Glass is a 1-bit per pixel image of LCD glass, rows packed LSB first.
type Glass struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix holds the lit pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

// NewGlass returns a blank w x h image.
func NewGlass(w, h int) *Glass {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	stride := (w + 7) / 8
	return &Glass{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, stride*h),
		Stride: stride,
	}
}

func (p *Glass) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Glass) ColorModel() color.Model {
	return LitModel
}

func (p *Glass) At(x, y int) color.Color {
	if !(image.Point{x, y}).In(p.Rect) {
		return color.Transparent
	}
	if p.Lit(x, y) {
		return On
	}
	return Off
}

// Lit reports whether the pixel at (x, y) is a driven segment.
func (p *Glass) Lit(x, y int) bool {
	if !(image.Point{x, y}).In(p.Rect) {
		return false
	}
	return p.Pix[y*p.Stride+x/8]&(1<<uint(x%8)) != 0
}

func (p *Glass) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}
	index := y*p.Stride + x/8
	if litModel(c).(Lit).On {
		p.Pix[index] |= 1 << uint(x%8)
	} else {
		p.Pix[index] &^= 1 << uint(x%8)
	}
}

// Fill the image with a single color.
func (p *Glass) Fill(c color.Color) {
	var value byte
	if litModel(c).(Lit).On {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// Clear turns every pixel off.
func (p *Glass) Clear() {
	p.Fill(Off)
}

// Count returns the number of lit pixels in r.
func (p *Glass) Count(r image.Rectangle) (n int) {
	r = r.Intersect(p.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if p.Lit(x, y) {
				n++
			}
		}
	}
	return
}
