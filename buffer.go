package segment

import "fmt"

// Buffer is the shadow of the controller RAM, one pattern per display address.
type Buffer struct {
	pix []Pattern
}

// NewBuffer returns a zeroed buffer for width addresses.
func NewBuffer(width int) *Buffer {
	return &Buffer{pix: make([]Pattern, width)}
}

// Len is the number of addresses.
func (b *Buffer) Len() int {
	return len(b.pix)
}

// At returns the pattern at addr. It panics if addr is out of range.
func (b *Buffer) At(addr int) Pattern {
	b.check(addr)
	return b.pix[addr]
}

// Set stores the pattern at addr. It panics if addr is out of range.
func (b *Buffer) Set(addr int, p Pattern) {
	b.check(addr)
	b.pix[addr] = p
}

// Reset zeroes all addresses.
func (b *Buffer) Reset() {
	for i := range b.pix {
		b.pix[i] = 0
	}
}

// Patterns returns a copy of the buffer contents.
func (b *Buffer) Patterns() []Pattern {
	out := make([]Pattern, len(b.pix))
	copy(out, b.pix)
	return out
}

// Addresses are generated from fixed position constants, so a miss is a bug.
func (b *Buffer) check(addr int) {
	if addr < 0 || addr >= len(b.pix) {
		panic(fmt.Sprintf("segment: address %d out of range [0,%d)", addr, len(b.pix)))
	}
}
