package segment

import "testing"

func TestPatternFor(t *testing.T) {
	want := []Pattern{
		0xeb, 0x60, 0xc7, 0xe5, 0x6c, 0xad, 0xaf, 0xe0,
		0xef, 0xed, 0x04, 0x00, 0xcc, 0x67, 0xee, 0x0f,
	}
	for g, p := range want {
		if v := PatternFor(Glyph(g)); v != p {
			t.Errorf("expected glyph %d to be %#08b, got %#08b", g, p, v)
		}
	}
	for g := 16; g < 256; g++ {
		if v := PatternFor(Glyph(g)); v != PatternFor(GlyphBlank) {
			t.Errorf("expected glyph %d to be blank, got %#08b", g, v)
		}
	}
}

func TestDigitsHaveNoDot(t *testing.T) {
	for g := Glyph(0); g < 16; g++ {
		if PatternFor(g).On(SegDot) {
			t.Errorf("expected glyph %d to leave the dot bit clear", g)
		}
	}
}

func TestSetBit(t *testing.T) {
	for p := 0; p < 256; p++ {
		for bit := 0; bit < 8; bit++ {
			on := SetBit(Pattern(p), bit, true)
			off := SetBit(Pattern(p), bit, false)
			if !on.On(bit) || off.On(bit) {
				t.Fatalf("expected bit %d of %#02x to follow the flag", bit, p)
			}
			mask := ^Pattern(1 << uint(bit))
			if on&mask != Pattern(p)&mask || off&mask != Pattern(p)&mask {
				t.Fatalf("expected bits other than %d of %#02x untouched", bit, p)
			}
			if ClearBit(Pattern(p), bit) != off {
				t.Fatalf("expected ClearBit to equal SetBit off")
			}
		}
	}
}
