package segment

// Pattern is the segment bit pattern of one display address.
//
//	 --7--
//	|     |
//	3     6
//	|     |
//	 --2--
//	|     |
//	1     5
//	|     |
//	 --0--  4 (dot)
type Pattern uint8

// Segment bits.
const (
	SegBottom      = 0
	SegBottomLeft  = 1
	SegMiddle      = 2
	SegTopLeft     = 3
	SegDot         = 4
	SegBottomRight = 5
	SegTopRight    = 6
	SegTop         = 7
)

// Glyph selects a pattern from the glyph table.
type Glyph uint8

// Non-numeric glyphs. Glyphs 0 to 9 are the decimal digits.
const (
	GlyphMinus Glyph = 10 + iota
	GlyphBlank
	GlyphSmallZero
	GlyphD
	GlyphA
	GlyphT
)

var glyphs = [16]Pattern{
	0b11101011, // 0
	0b01100000, // 1
	0b11000111, // 2
	0b11100101, // 3
	0b01101100, // 4
	0b10101101, // 5, S
	0b10101111, // 6
	0b11100000, // 7
	0b11101111, // 8
	0b11101101, // 9
	0b00000100, // -
	0b00000000, // blank
	0b11001100, // small 0, for V/S
	0b01100111, // d
	0b11101110, // A
	0b00001111, // t
}

// PatternFor returns the segment pattern for g. Glyphs outside the table are blank.
func PatternFor(g Glyph) Pattern {
	if int(g) >= len(glyphs) {
		g = GlyphBlank
	}
	return glyphs[g]
}

// On reports whether bit is set.
func (p Pattern) On(bit int) bool {
	return p&(1<<uint(bit)) != 0
}

// SetBit returns p with bit set to on, leaving every other bit untouched.
func SetBit(p Pattern, bit int, on bool) Pattern {
	p = ClearBit(p, bit)
	if on {
		p |= 1 << uint(bit)
	}
	return p
}

// ClearBit returns p with bit cleared.
func ClearBit(p Pattern, bit int) Pattern {
	return p &^ (1 << uint(bit))
}
