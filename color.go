package touchui

import "image/color"

// Color is a packed RGB565 pixel, the native format of the display drivers
// this package targets.
type Color uint16

// MakeColor packs raw RGB565 channels: r and b range 0-31, g ranges 0-63.
func MakeColor(r, g, b uint8) Color {
	return Color(r)<<11 | Color(g)<<5 | Color(b)
}

// RGB converts 8-bit channels to RGB565, truncating the low bits.
func RGB(r, g, b uint8) Color {
	return Color(b)>>3 | Color(g&0xfc)<<3 | Color(r&0xf8)<<8
}

// RGBA expands the color back to 8-bit channels for the driver boundary.
// The high bits are replicated into the low bits so that pure white and
// black round-trip exactly.
func (c Color) RGBA() color.RGBA {
	r := uint8(c>>8) & 0xf8
	g := uint8(c>>3) & 0xfc
	b := uint8(c << 3)
	return color.RGBA{
		R: r | r>>5,
		G: g | g>>6,
		B: b | b>>5,
		A: 0xff,
	}
}

// Common RGB565 colors.
const (
	Black     Color = 0x0000
	Navy      Color = 0x000f
	DarkGreen Color = 0x03e0
	DarkCyan  Color = 0x03ef
	Maroon    Color = 0x7800
	Purple    Color = 0x780f
	Olive     Color = 0x7be0
	LightGray Color = 0xc618
	DarkGray  Color = 0x7bef
	Blue      Color = 0x001f
	DarkBlue  Color = 0x0010
	LightBlue Color = 0x867f
	Green     Color = 0x07e0
	Cyan      Color = 0x07ff
	Red       Color = 0xf800
	Magenta   Color = 0xf81f
	Yellow    Color = 0xffe0
	Orange    Color = 0xfd20
	White     Color = 0xffff
)
