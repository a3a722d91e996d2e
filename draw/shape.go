package draw

import (
	"image"
	"image/color"
)

// HorizontalLine draws a line between (x,y) and (x+w,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	for i := 0; i < w; i++ {
		dst.Set(x+i, y, c)
	}
}

// VerticalLine draws a line between (x,y) and (x,y+h).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	for i := 0; i < h; i++ {
		dst.Set(x, y+i, c)
	}
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		HorizontalLine(dst, rect.Min.X, y, rect.Dx(), c)
	}
}

// Segment draws a bar with pointed ends, the shape of one LCD segment. The bar
// runs along the longer side of rect.
func Segment(dst Image, rect image.Rectangle, c color.Color) {
	var (
		w = rect.Dx()
		h = rect.Dy()
	)
	if w >= h {
		mid := (h - 1) / 2
		for i := 0; i < h; i++ {
			inset := abs(i - mid)
			HorizontalLine(dst, rect.Min.X+inset, rect.Min.Y+i, w-2*inset, c)
		}
		return
	}
	mid := (w - 1) / 2
	for i := 0; i < w; i++ {
		inset := abs(i - mid)
		VerticalLine(dst, rect.Min.X+i, rect.Min.Y+inset, h-2*inset, c)
	}
}

// RoundedRectangle draws a rectangle with radius pixels rounded corners.
func RoundedRectangle(dst Image, rect image.Rectangle, radius int, c color.Color) {
	var (
		r = radius
		x = rect.Min.X
		y = rect.Min.Y
		w = rect.Dx()
		h = rect.Dy()
	)
	HorizontalLine(dst, x+r, y, w-2*r, c)
	HorizontalLine(dst, x+r, y+h-1, w-2*r, c)
	VerticalLine(dst, x, y+r, h-2*r, c)
	VerticalLine(dst, x+w-1, y+r, h-2*r, c)
	roundedCorner(dst, x+r, y+r, r, 1, c)
	roundedCorner(dst, x+w-r-1, y+r, r, 2, c)
	roundedCorner(dst, x+w-r-1, y+h-r-1, r, 4, c)
	roundedCorner(dst, x+r, y+h-r-1, r, 8, c)
}

// roundedCorner draws one quadrant of a midpoint circle.
func roundedCorner(dst Image, x0, y0, radius, quadrant int, c color.Color) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	for x <= y {
		switch {
		case quadrant&1 != 0:
			dst.Set(x0-y, y0-x, c)
			dst.Set(x0-x, y0-y, c)
		case quadrant&2 != 0:
			dst.Set(x0+x, y0-y, c)
			dst.Set(x0+y, y0-x, c)
		case quadrant&4 != 0:
			dst.Set(x0+x, y0+y, c)
			dst.Set(x0+y, y0+x, c)
		case quadrant&8 != 0:
			dst.Set(x0-y, y0+x, c)
			dst.Set(x0-x, y0+y, c)
		}
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
