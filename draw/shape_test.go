package draw

import (
	"image"
	"image/color"
	"testing"
)

func count(img *image.Gray, r image.Rectangle) (n int) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.GrayAt(x, y).Y != 0 {
				n++
			}
		}
	}
	return
}

func TestBox(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 10))
	Box(img, image.Rect(2, 3, 6, 5), color.White)
	if n := count(img, img.Rect); n != 8 {
		t.Errorf("expected 8 pixels set, got %d", n)
	}
	if img.GrayAt(5, 4).Y == 0 || img.GrayAt(6, 4).Y != 0 {
		t.Error("expected box to cover [2,6)x[3,5)")
	}
}

func TestSegment(t *testing.T) {
	t.Run("horizontal", func(it *testing.T) {
		img := image.NewGray(image.Rect(0, 0, 20, 20))
		Segment(img, image.Rect(0, 0, 12, 3), color.White)
		// row 1 is the spine, rows 0 and 2 are inset by one pixel
		if n := count(img, image.Rect(0, 1, 20, 2)); n != 12 {
			it.Errorf("expected spine of 12 pixels, got %d", n)
		}
		if n := count(img, image.Rect(0, 0, 20, 1)); n != 10 {
			it.Errorf("expected edge of 10 pixels, got %d", n)
		}
		if img.GrayAt(0, 0).Y != 0 {
			it.Error("expected pointed corner")
		}
	})
	t.Run("vertical", func(it *testing.T) {
		img := image.NewGray(image.Rect(0, 0, 20, 20))
		Segment(img, image.Rect(4, 2, 7, 14), color.White)
		if n := count(img, image.Rect(5, 0, 6, 20)); n != 12 {
			it.Errorf("expected spine of 12 pixels, got %d", n)
		}
		if img.GrayAt(4, 2).Y != 0 {
			it.Error("expected pointed corner")
		}
	})
}

func TestRoundedRectangle(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 40, 20))
	RoundedRectangle(img, image.Rect(0, 0, 40, 20), 4, color.White)
	if img.GrayAt(0, 0).Y != 0 {
		t.Error("expected corner pixel to be cut")
	}
	if img.GrayAt(20, 0).Y == 0 || img.GrayAt(20, 19).Y == 0 {
		t.Error("expected top and bottom edges")
	}
	if img.GrayAt(0, 10).Y == 0 || img.GrayAt(39, 10).Y == 0 {
		t.Error("expected left and right edges")
	}
	if n := count(img, image.Rect(1, 1, 39, 19)); n == 0 {
		t.Error("expected corner arcs inside the edges")
	}
	if img.GrayAt(20, 10).Y != 0 {
		t.Error("expected hollow rectangle")
	}
}
