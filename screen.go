package touchui

import (
	"image/color"

	"tinygo.org/x/drivers"

	"github.com/tinytouch/touchui/font"
)

// Displayer is the display this package draws on. It matches the RGB565
// TFT drivers in tinygo.org/x/drivers (ili9341 and friends implement it
// directly); the sim package provides a software implementation.
type Displayer interface {
	// Size returns the current size of the display, after rotation.
	Size() (x, y int16)

	// SetPixel modifies a single pixel.
	SetPixel(x, y int16, c color.RGBA)

	// FillRectangle fills the given rectangle with a single color.
	FillRectangle(x, y, width, height int16, c color.RGBA) error

	// FillScreen fills the whole screen with a single color.
	FillScreen(c color.RGBA)

	// DrawRGBBitmap copies a rectangle of packed RGB565 pixels.
	DrawRGBBitmap(x, y int16, data []uint16, w, h int16) error

	// SetRotation changes the rotation, Rotation reads it back.
	SetRotation(rotation drivers.Rotation) error
	Rotation() drivers.Rotation

	// Display flushes buffered drivers. Direct-write drivers return nil.
	Display() error
}

// Image is a rectangle of packed RGB565 pixels in row-major order, ready
// to be blitted to the display.
type Image struct {
	Width  int
	Height int
	Pix    []uint16
}

// Screen draws shapes and text on a Displayer. Drawing calls are fire and
// forget, driver errors are dropped the way a UI loop wants them to be.
type Screen struct {
	d      Displayer
	width  int
	height int

	font      *font.Font
	textColor Color
	cursorX   int
	cursorY   int
}

// NewScreen wraps an already configured display.
func NewScreen(d Displayer) *Screen {
	w, h := d.Size()
	return &Screen{d: d, width: int(w), height: int(h)}
}

// Width returns the display width in pixels, after rotation.
func (s *Screen) Width() int { return s.width }

// Height returns the display height in pixels, after rotation.
func (s *Screen) Height() int { return s.height }

// Rotation returns the current display rotation.
func (s *Screen) Rotation() drivers.Rotation { return s.d.Rotation() }

// SetRotation rotates the display and updates the screen size.
func (s *Screen) SetRotation(rotation drivers.Rotation) {
	s.d.SetRotation(rotation)
	w, h := s.d.Size()
	s.width, s.height = int(w), int(h)
}

// Display flushes buffered displays. No-op for direct-write drivers.
func (s *Screen) Display() {
	s.d.Display()
}

// FillScreen clears the whole display to c.
func (s *Screen) FillScreen(c Color) {
	s.d.FillScreen(c.RGBA())
}

// SetPixel sets a single pixel.
func (s *Screen) SetPixel(x, y int, c Color) {
	s.d.SetPixel(int16(x), int16(y), c.RGBA())
}

// HLine draws a horizontal line of the given width starting at (x, y).
func (s *Screen) HLine(x, y, width int, c Color) {
	s.d.FillRectangle(int16(x), int16(y), int16(width), 1, c.RGBA())
}

// VLine draws a vertical line of the given height starting at (x, y).
func (s *Screen) VLine(x, y, height int, c Color) {
	s.d.FillRectangle(int16(x), int16(y), 1, int16(height), c.RGBA())
}

// Line draws a line between two points.
func (s *Screen) Line(x0, y0, x1, y1 int, c Color) {
	if y0 == y1 {
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		s.HLine(x0, y0, x1-x0+1, c)
		return
	}
	if x0 == x1 {
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		s.VLine(x0, y0, y1-y0+1, c)
		return
	}

	// Bresenham.
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dx := x1 - x0
	dy := abs(y1 - y0)
	err := dx / 2
	ystep := -1
	if y0 < y1 {
		ystep = 1
	}
	for ; x0 <= x1; x0++ {
		if steep {
			s.SetPixel(y0, x0, c)
		} else {
			s.SetPixel(x0, y0, c)
		}
		err -= dy
		if err < 0 {
			y0 += ystep
			err += dx
		}
	}
}

// Rect draws a one pixel wide rectangle outline.
func (s *Screen) Rect(x, y, width, height int, c Color) {
	s.HLine(x, y, width, c)
	s.HLine(x, y+height-1, width, c)
	s.VLine(x, y, height, c)
	s.VLine(x+width-1, y, height, c)
}

// FillRect fills a rectangle.
func (s *Screen) FillRect(x, y, width, height int, c Color) {
	s.d.FillRectangle(int16(x), int16(y), int16(width), int16(height), c.RGBA())
}

// RoundRect draws a rectangle outline with rounded corners.
func (s *Screen) RoundRect(x, y, width, height, radius int, c Color) {
	s.HLine(x+radius, y, width-2*radius, c)
	s.HLine(x+radius, y+height-1, width-2*radius, c)
	s.VLine(x, y+radius, height-2*radius, c)
	s.VLine(x+width-1, y+radius, height-2*radius, c)
	s.arc(x+radius, y+radius, radius, 1, c)
	s.arc(x+width-radius-1, y+radius, radius, 2, c)
	s.arc(x+width-radius-1, y+height-radius-1, radius, 4, c)
	s.arc(x+radius, y+height-radius-1, radius, 8, c)
}

// FillRoundRect fills a rectangle with rounded corners.
func (s *Screen) FillRoundRect(x, y, width, height, radius int, c Color) {
	s.FillRect(x+radius, y, width-2*radius, height, c)
	s.fillArc(x+radius, y+radius, radius, 2, height-2*radius-1, c)
	s.fillArc(x+width-radius-1, y+radius, radius, 1, height-2*radius-1, c)
}

// Circle draws a one pixel wide circle outline.
func (s *Screen) Circle(x0, y0, radius int, c Color) {
	f := 1 - radius
	ddx := 1
	ddy := -2 * radius
	x := 0
	y := radius

	s.SetPixel(x0, y0+radius, c)
	s.SetPixel(x0, y0-radius, c)
	s.SetPixel(x0+radius, y0, c)
	s.SetPixel(x0-radius, y0, c)
	for x < y {
		if f >= 0 {
			y--
			ddy += 2
			f += ddy
		}
		x++
		ddx += 2
		f += ddx
		s.SetPixel(x0+x, y0+y, c)
		s.SetPixel(x0-x, y0+y, c)
		s.SetPixel(x0+x, y0-y, c)
		s.SetPixel(x0-x, y0-y, c)
		s.SetPixel(x0+y, y0+x, c)
		s.SetPixel(x0-y, y0+x, c)
		s.SetPixel(x0+y, y0-x, c)
		s.SetPixel(x0-y, y0-x, c)
	}
}

// FillCircle fills a circle.
func (s *Screen) FillCircle(x0, y0, radius int, c Color) {
	s.VLine(x0, y0-radius, 2*radius+1, c)
	s.fillArc(x0, y0, radius, 3, 0, c)
}

// arc draws quarter circle outlines. corners is a bitmask: 1 top left,
// 2 top right, 4 bottom right, 8 bottom left.
func (s *Screen) arc(x0, y0, radius, corners int, c Color) {
	f := 1 - radius
	ddx := 1
	ddy := -2 * radius
	x := 0
	y := radius

	for x < y {
		if f >= 0 {
			y--
			ddy += 2
			f += ddy
		}
		x++
		ddx += 2
		f += ddx
		if corners&4 != 0 {
			s.SetPixel(x0+x, y0+y, c)
			s.SetPixel(x0+y, y0+x, c)
		}
		if corners&2 != 0 {
			s.SetPixel(x0+x, y0-y, c)
			s.SetPixel(x0+y, y0-x, c)
		}
		if corners&8 != 0 {
			s.SetPixel(x0-y, y0+x, c)
			s.SetPixel(x0-x, y0+y, c)
		}
		if corners&1 != 0 {
			s.SetPixel(x0-y, y0-x, c)
			s.SetPixel(x0-x, y0-y, c)
		}
	}
}

// fillArc fills circle halves with vertical lines. sides is a bitmask:
// 1 right half, 2 left half. delta stretches the halves apart vertically,
// which is what rounded rectangle fills need.
func (s *Screen) fillArc(x0, y0, radius, sides, delta int, c Color) {
	f := 1 - radius
	ddx := 1
	ddy := -2 * radius
	x := 0
	y := radius

	for x < y {
		if f >= 0 {
			y--
			ddy += 2
			f += ddy
		}
		x++
		ddx += 2
		f += ddx
		if sides&1 != 0 {
			s.VLine(x0+x, y0-y, 2*y+1+delta, c)
			s.VLine(x0+y, y0-x, 2*x+1+delta, c)
		}
		if sides&2 != 0 {
			s.VLine(x0-x, y0-y, 2*y+1+delta, c)
			s.VLine(x0-y, y0-x, 2*x+1+delta, c)
		}
	}
}

// Triangle draws a triangle outline.
func (s *Screen) Triangle(x0, y0, x1, y1, x2, y2 int, c Color) {
	s.Line(x0, y0, x1, y1, c)
	s.Line(x1, y1, x2, y2, c)
	s.Line(x2, y2, x0, y0, c)
}

// FillTriangle fills a triangle.
func (s *Screen) FillTriangle(x0, y0, x1, y1, x2, y2 int, c Color) {
	// Sort by y.
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	if y0 == y2 {
		// Degenerate, all on one line.
		a, b := x0, x0
		if x1 < a {
			a = x1
		} else if x1 > b {
			b = x1
		}
		if x2 < a {
			a = x2
		} else if x2 > b {
			b = x2
		}
		s.HLine(a, y0, b-a+1, c)
		return
	}

	dx01 := x1 - x0
	dy01 := y1 - y0
	dx02 := x2 - x0
	dy02 := y2 - y0
	dx12 := x2 - x1
	dy12 := y2 - y1
	sa := 0
	sb := 0

	last := y1 - 1
	if y1 == y2 {
		last = y1
	}
	y := y0
	for ; y <= last; y++ {
		a := x0 + sa/dy01
		b := x0 + sb/dy02
		sa += dx01
		sb += dx02
		if a > b {
			a, b = b, a
		}
		s.HLine(a, y, b-a+1, c)
	}

	sa = dx12 * (y - y1)
	sb = dx02 * (y - y0)
	for ; y <= y2; y++ {
		a := x1 + sa/dy12
		b := x0 + sb/dy02
		sa += dx12
		sb += dx02
		if a > b {
			a, b = b, a
		}
		s.HLine(a, y, b-a+1, c)
	}
}

// DrawImage blits an RGB565 image with its top left corner at (x, y).
func (s *Screen) DrawImage(x, y int, img *Image) {
	s.d.DrawRGBBitmap(int16(x), int16(y), img.Pix, int16(img.Width), int16(img.Height))
}

// SetFont selects the font used by the Print methods.
func (s *Screen) SetFont(f *font.Font) {
	s.font = f
}

// Font returns the currently selected font.
func (s *Screen) Font() *font.Font {
	return s.font
}

// SetTextColor sets the color used by the Print methods.
func (s *Screen) SetTextColor(c Color) {
	s.textColor = c
}

// MoveTo places the text cursor. The cursor is the top left corner of the
// next glyph.
func (s *Screen) MoveTo(x, y int) {
	s.cursorX, s.cursorY = x, y
}

// Cursor returns the current text cursor position.
func (s *Screen) Cursor() (x, y int) {
	return s.cursorX, s.cursorY
}

// Print draws text at the cursor and advances it. Newlines move the cursor
// back to the left margin it started the call at, one line down.
func (s *Screen) Print(text string) {
	left := s.cursorX
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			s.cursorX = left
			s.cursorY += s.font.LineHeight()
			continue
		}
		s.drawGlyph(text[i])
	}
}

// PrintCentered draws text horizontally centered on centerX with its top
// edge at y.
func (s *Screen) PrintCentered(text string, centerX, y int) {
	s.MoveTo(centerX-s.font.StringWidth(text)/2, y)
	s.Print(text)
}

// PrintRight draws text ending at rightX with its top edge at y.
func (s *Screen) PrintRight(text string, rightX, y int) {
	s.MoveTo(rightX-s.font.StringWidth(text), y)
	s.Print(text)
}

// StringWidth returns the width of text in the current font.
func (s *Screen) StringWidth(text string) int {
	return s.font.StringWidth(text)
}

// drawGlyph renders one character at the cursor and advances it. Columns
// are drawn as vertical runs, which keeps the number of driver calls low.
func (s *Screen) drawGlyph(ch byte) {
	g := s.font.Glyph(ch)
	rgba := s.textColor.RGBA()
	for col := 0; col < g.Width; col++ {
		bits := g.Column(col)
		row := 0
		for bits != 0 {
			if bits&1 == 0 {
				bits >>= 1
				row++
				continue
			}
			run := 0
			for bits&1 == 1 {
				bits >>= 1
				run++
			}
			s.d.FillRectangle(int16(s.cursorX+col), int16(s.cursorY+row), 1, int16(run), rgba)
			row += run
		}
	}
	s.cursorX += g.Width + s.font.Pad()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
