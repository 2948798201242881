// Package font reads metrics and glyphs from compiled bitmap font blobs.
//
// A blob is a flat byte slice with a 5 byte header, an offset table and the
// glyph data:
//
//	data[0]  glyph height in rows, descenders included
//	data[1]  horizontal padding added after every glyph
//	data[2]  extra rows between lines of text
//	data[3]  rows occupied by descenders
//	data[4]  reserved
//	data[5:] 96 little-endian uint16 offsets, one per character
//	         0x20..0x7f, each relative to the start of the blob
//
// A glyph starts with its width in columns, followed by width little-endian
// uint16 column bitmaps with the least significant bit at the top row. The
// column encoding limits fonts to 16 rows, which covers the 9 to 16 pixel
// sizes this package is meant for.
package font

import "encoding/binary"

const (
	offHeight      = 0
	offPad         = 1
	offLineSpacing = 2
	offDescender   = 3
	headerSize     = 5

	firstChar = 0x20
	lastChar  = 0x7f
)

// Font wraps a font blob. The blob is only read, so fonts may live in flash
// and be shared freely.
type Font struct {
	data []byte
}

// New returns a Font reading from the given blob. The blob is not copied.
func New(data []byte) *Font {
	return &Font{data: data}
}

// Height returns the glyph height in pixels, descenders included.
func (f *Font) Height() int {
	return int(f.data[offHeight])
}

// Ascent returns the glyph height above the baseline, i.e. the height
// without descenders. Single lines of text are usually centered on this.
func (f *Font) Ascent() int {
	return int(f.data[offHeight]) - int(f.data[offDescender])
}

// LineHeight returns the vertical advance between lines of text.
func (f *Font) LineHeight() int {
	return int(f.data[offHeight]) + int(f.data[offLineSpacing])
}

// Pad returns the horizontal padding added after every glyph.
func (f *Font) Pad() int {
	return int(f.data[offPad])
}

// Glyph looks up the glyph for c. Characters outside 0x20..0x7f return a
// zero-width glyph.
func (f *Font) Glyph(c byte) Glyph {
	if c < firstChar || c > lastChar {
		return Glyph{}
	}
	off := binary.LittleEndian.Uint16(f.data[headerSize+2*(int(c)-firstChar):])
	width := int(f.data[off])
	return Glyph{
		Width: width,
		cols:  f.data[int(off)+1 : int(off)+1+2*width],
	}
}

// Advance returns the cursor advance for c: the glyph width plus padding.
func (f *Font) Advance(c byte) int {
	return f.Glyph(c).Width + f.Pad()
}

// StringWidth returns the width of s in pixels, including the padding after
// the last glyph.
func (f *Font) StringWidth(s string) int {
	width := 0
	for i := 0; i < len(s); i++ {
		width += f.Advance(s[i])
	}
	return width
}

// Glyph is one character's column bitmaps.
type Glyph struct {
	Width int
	cols  []byte
}

// Column returns the bitmap for column i, least significant bit at the top.
func (g Glyph) Column(i int) uint16 {
	return binary.LittleEndian.Uint16(g.cols[2*i:])
}
