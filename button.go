package touchui

import (
	"image"

	"github.com/tinytouch/touchui/input"
)

// Button is a rectangular push button anchored at its center point. The
// caller allocates it, positions it and keeps it around for the check
// methods.
type Button struct {
	Label   string
	CenterX int
	CenterY int
	Width   int
	Height  int
}

// Colors lets a button override the shared menu palette. Zero fields are
// unused; a button with a nil Colors draws with the menu colors.
type Colors struct {
	Face     Color
	Selected Color
	Frame    Color
	Text     Color
}

// rect returns the button's bounds, clipped to the screen's top left.
func (b *Button) rect() image.Rectangle {
	x := b.CenterX - b.Width/2
	if x < 0 {
		x = 0
	}
	y := b.CenterY - b.Height/2
	if y < 0 {
		y = 0
	}
	return image.Rect(x, y, x+b.Width, y+b.Height)
}

// DrawButton draws b using the menu colors, highlighted if pressed.
func (ui *UI) DrawButton(b *Button, pressed bool) {
	face := ui.menuButtonColor
	if pressed {
		face = ui.menuSelectedColor
	}
	r := b.rect()
	ui.drawButtonFace(r, b.Label, face, ui.menuFrameColor, ui.menuTextColor)
}

// DrawButtonColored draws b with its own colors, highlighted if pressed.
func (ui *UI) DrawButtonColored(b *Button, colors Colors, pressed bool) {
	face := colors.Face
	if pressed {
		face = colors.Selected
	}
	ui.drawButtonFace(b.rect(), b.Label, face, colors.Frame, colors.Text)
}

// drawButtonFace draws a raised button with a one or two line label.
func (ui *UI) drawButtonFace(r image.Rectangle, label string, face, frame, text Color) {
	s := ui.screen

	// Lines along the left and top edges make the face look raised.
	s.VLine(r.Min.X, r.Min.Y, r.Dy(), frame)
	s.HLine(r.Min.X, r.Min.Y, r.Dx(), frame)
	s.FillRect(r.Min.X+1, r.Min.Y+1, r.Dx()-1, r.Dy()-1, face)

	s.SetFont(ui.menuFont)
	s.SetTextColor(text)
	centerX := r.Min.X + r.Dx()/2
	centerY := r.Min.Y + r.Dy()/2
	line1, line2 := splitLabel(label, r.Dx()-8, ui.menuFont.StringWidth)
	if line2 == "" {
		s.PrintCentered(line1, centerX, centerY-ui.menuFont.Ascent()/2)
	} else {
		s.PrintCentered(line1, centerX, centerY-(4+ui.menuFont.Ascent()))
		s.PrintCentered(line2, centerX, centerY+2)
	}
}

// splitLabel breaks a label at spaces into at most two lines so the first
// line fits maxWidth. A single word wider than maxWidth stays on the first
// line and overflows; that is the caller's sizing problem, not an error.
func splitLabel(label string, maxWidth int, width func(string) int) (string, string) {
	// prefix returns the label up to (not including) the nth space, and
	// whether that consumed the whole label.
	prefix := func(n int) (string, bool) {
		for i := 0; i < len(label); i++ {
			if label[i] == ' ' {
				n--
				if n == 0 {
					return label[:i], false
				}
			}
		}
		return label, true
	}
	rest := func(line string, all bool) string {
		if all {
			return ""
		}
		return label[len(line)+1:]
	}

	for n := 1; ; {
		line, all := prefix(n)
		w := width(line)
		switch {
		case w > maxWidth && n == 1:
			return line, rest(line, all)
		case w < maxWidth && !all:
			n++
		case w <= maxWidth && all:
			return line, ""
		case w > maxWidth:
			line, all = prefix(n - 1)
			return line, rest(line, all)
		default:
			return line, rest(line, all)
		}
	}
}

// ButtonClicked reports whether ev completed a click of b, drawing touch
// feedback along the way: the press highlights the button, releasing
// inside it restores it and reports the click.
func (ui *UI) ButtonClicked(ev input.Event, b *Button) bool {
	r := b.rect()
	switch {
	case ev.Kind == input.Pressed && within(ev, r):
		ui.DrawButton(b, true)
	case ev.Kind == input.Released && within(ev, r):
		ui.DrawButton(b, false)
		return true
	}
	return false
}

// ButtonClickedColored is ButtonClicked for a button with its own colors:
// touch feedback is drawn with colors instead of the menu palette.
func (ui *UI) ButtonClickedColored(ev input.Event, b *Button, colors Colors) bool {
	r := b.rect()
	switch {
	case ev.Kind == input.Pressed && within(ev, r):
		ui.DrawButtonColored(b, colors, true)
	case ev.Kind == input.Released && within(ev, r):
		ui.DrawButtonColored(b, colors, false)
		return true
	}
	return false
}

// ButtonTouched reports whether ev is the initial press of b. Most callers
// want ButtonClicked instead.
func (ui *UI) ButtonTouched(ev input.Event, b *Button) bool {
	if ev.Kind == input.Pressed && within(ev, b.rect()) {
		ui.DrawButton(b, true)
		return true
	}
	return false
}

// ButtonRepeating reports presses and auto-repeats of b while it is held
// down. The initial press highlights the button and counts as the first
// repeat; the release restores it.
func (ui *UI) ButtonRepeating(ev input.Event, b *Button) bool {
	r := b.rect()
	switch {
	case ev.Kind == input.Pressed && within(ev, r):
		ui.DrawButton(b, true)
		return true
	case ev.Kind == input.Repeat && within(ev, r):
		return true
	case ev.Kind == input.Released && within(ev, r):
		ui.DrawButton(b, false)
	}
	return false
}

// ImageButton is a push button showing an RGB565 image instead of a label.
// Image and Selected must be one pixel smaller than the button in both
// directions so the raised edge stays visible. Selected may be nil, the
// normal image is shown while pressed then.
type ImageButton struct {
	Image    *Image
	Selected *Image
	CenterX  int
	CenterY  int
	Width    int
	Height   int
}

func (b *ImageButton) rect() image.Rectangle {
	x := b.CenterX - b.Width/2
	if x < 0 {
		x = 0
	}
	y := b.CenterY - b.Height/2
	if y < 0 {
		y = 0
	}
	return image.Rect(x, y, x+b.Width, y+b.Height)
}

// DrawImageButton draws b, using its pressed image if pressed.
func (ui *UI) DrawImageButton(b *ImageButton, pressed bool) {
	img := b.Image
	if pressed && b.Selected != nil {
		img = b.Selected
	}
	r := b.rect()
	s := ui.screen
	s.DrawImage(r.Min.X, r.Min.Y, img)
	s.VLine(r.Min.X, r.Min.Y, r.Dy(), ui.menuFrameColor)
	s.HLine(r.Min.X, r.Min.Y, r.Dx(), ui.menuFrameColor)
}

// ImageButtonClicked reports whether ev completed a click of b, drawing
// touch feedback along the way.
func (ui *UI) ImageButtonClicked(ev input.Event, b *ImageButton) bool {
	r := b.rect()
	switch {
	case ev.Kind == input.Pressed && within(ev, r):
		ui.DrawImageButton(b, true)
	case ev.Kind == input.Released && within(ev, r):
		ui.DrawImageButton(b, false)
		return true
	}
	return false
}

// ImageButtonTouched reports whether ev is the initial press of b.
func (ui *UI) ImageButtonTouched(ev input.Event, b *ImageButton) bool {
	if ev.Kind == input.Pressed && within(ev, b.rect()) {
		ui.DrawImageButton(b, true)
		return true
	}
	return false
}

// ImageButtonRepeating reports presses and auto-repeats of b while it is
// held down, like ButtonRepeating.
func (ui *UI) ImageButtonRepeating(ev input.Event, b *ImageButton) bool {
	r := b.rect()
	switch {
	case ev.Kind == input.Pressed && within(ev, r):
		ui.DrawImageButton(b, true)
		return true
	case ev.Kind == input.Repeat && within(ev, r):
		return true
	case ev.Kind == input.Released && within(ev, r):
		ui.DrawImageButton(b, false)
	}
	return false
}
