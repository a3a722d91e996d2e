// Package preview renders segment patterns the way the LCD glass shows them,
// either as an image or as ASCII art for logs.
package preview

import (
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/BeatGlow/segment"
	"github.com/BeatGlow/segment/draw"
	"github.com/BeatGlow/segment/pixel"
)

// Cell geometry in pixels.
const (
	CellWidth  = 24
	CellHeight = 40
	Thickness  = 5
	Gap        = 10
	Margin     = 8
	Radius     = 4
)

const captionHeight = 16

// segmentRects returns the rectangle of every segment bit for a cell at origin.
func segmentRects(origin image.Point) map[int]image.Rectangle {
	var (
		w    = CellWidth
		h    = CellHeight
		t    = Thickness
		half = h / 2
	)
	r := func(x0, y0, x1, y1 int) image.Rectangle {
		return image.Rect(x0, y0, x1, y1).Add(origin)
	}
	return map[int]image.Rectangle{
		segment.SegTop:         r(1, 0, w-1, t),
		segment.SegTopLeft:     r(0, 1, t, half+1),
		segment.SegTopRight:    r(w-t, 1, w, half+1),
		segment.SegMiddle:      r(1, half-t/2, w-1, half-t/2+t),
		segment.SegBottomLeft:  r(0, half, t, h-1),
		segment.SegBottomRight: r(w-t, half, w, h-1),
		segment.SegBottom:      r(1, h-t, w-1, h),
		segment.SegDot:         r(w+2, h-t, w+2+t, h),
	}
}

// CellOrigin is the top left corner of the cell for address addr.
func CellOrigin(addr int) image.Point {
	return image.Pt(Margin+addr*(CellWidth+Gap), Margin)
}

// SegmentRect is the bounding box of one segment bit of the cell at addr.
func SegmentRect(addr, bit int) image.Rectangle {
	return segmentRects(CellOrigin(addr))[bit]
}

// Render draws patterns as a row of seven segment cells, one per address, in a
// rounded bezel. A non-empty caption is printed below the cells.
func Render(patterns []segment.Pattern, caption string) *pixel.Glass {
	var (
		w = 2*Margin + len(patterns)*(CellWidth+Gap) - Gap + Thickness
		h = 2*Margin + CellHeight
	)
	if caption != "" {
		h += captionHeight
	}
	img := pixel.NewGlass(w, h)
	draw.RoundedRectangle(img, img.Bounds(), Radius, pixel.On)

	for addr, p := range patterns {
		for bit, rect := range segmentRects(CellOrigin(addr)) {
			if !p.On(bit) {
				continue
			}
			if bit == segment.SegDot {
				draw.Box(img, rect, pixel.On)
			} else {
				draw.Segment(img, rect, pixel.On)
			}
		}
	}

	if caption != "" {
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(pixel.On),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(Margin, h-Margin/2),
		}
		d.DrawString(caption)
	}
	return img
}

// Text renders patterns as three lines of ASCII art.
func Text(patterns []segment.Pattern) string {
	var rows [3]strings.Builder
	mark := func(p segment.Pattern, bit int, s string) string {
		if p.On(bit) {
			return s
		}
		return " "
	}
	for _, p := range patterns {
		rows[0].WriteString(" " + mark(p, segment.SegTop, "_") + "  ")
		rows[1].WriteString(mark(p, segment.SegTopLeft, "|") +
			mark(p, segment.SegMiddle, "_") +
			mark(p, segment.SegTopRight, "|") + " ")
		rows[2].WriteString(mark(p, segment.SegBottomLeft, "|") +
			mark(p, segment.SegBottom, "_") +
			mark(p, segment.SegBottomRight, "|") +
			mark(p, segment.SegDot, "."))
	}
	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = strings.TrimRight(rows[i].String(), " ")
	}
	return strings.Join(lines, "\n")
}
