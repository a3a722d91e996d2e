package segment

func saturate(v, max uint32) uint32 {
	if v > max {
		return max
	}
	return v
}

func glyphOf(v uint32) Glyph {
	if v > uint32(GlyphT) {
		return GlyphBlank
	}
	return Glyph(v)
}

// renderDigits writes the decimal digits of v over addrs, least significant
// digit to the last address. The first address gets the remaining quotient, so
// v must already be saturated to the field width.
func (d *driver) renderDigits(v uint32, addrs ...int) error {
	for i := len(addrs) - 1; i > 0; i-- {
		if err := d.SetDigit(addrs[i], Glyph(v%10)); err != nil {
			return err
		}
		v /= 10
	}
	if len(addrs) > 0 {
		return d.SetDigit(addrs[0], glyphOf(v))
	}
	return nil
}

func (d *driver) renderGlyphs(glyphs []Glyph, addrs ...int) error {
	for i, addr := range addrs {
		if err := d.SetDigit(addr, glyphs[i]); err != nil {
			return err
		}
	}
	return nil
}
