package touchui

import (
	"image"

	"github.com/tinytouch/touchui/input"
)

// Width of the little left-pointing arrow on the Back button.
const arrowWidth = 8

// DrawTitleBar draws the title bar without a button.
func (ui *UI) DrawTitleBar(title string) {
	ui.drawTitleBar(title, titleButtonNone)
}

// DrawTitleBarWithBack draws the title bar with a Back button on the left.
// Poll for it with BackClicked.
func (ui *UI) DrawTitleBarWithBack(title string) {
	ui.drawTitleBar(title, titleButtonBack)
}

// DrawTitleBarWithMenu draws the title bar with a hamburger button on the
// left. Poll for it with MenuClicked.
func (ui *UI) DrawTitleBarWithMenu(title string) {
	ui.drawTitleBar(title, titleButtonMenu)
}

func (ui *UI) drawTitleBar(title string, button titleButton) {
	ui.titleText = title
	ui.titleShows = button

	s := ui.screen
	s.FillRect(0, 0, s.Width(), titleBarHeight, ui.titleBarColor)

	// Center the title, but keep it clear of the button.
	s.SetFont(ui.titleFont)
	x := s.Width()/2 - s.StringWidth(title)/2
	if x < 2 {
		x = 2
	}
	switch button {
	case titleButtonBack:
		if r := ui.backButtonRect(); x < r.Max.X+6 {
			x = r.Max.X + 6
		}
	case titleButtonMenu:
		if r := ui.menuButtonRect(); x < r.Max.X+6 {
			x = r.Max.X + 6
		}
	}

	s.SetTextColor(ui.titleBarTextColor)
	s.MoveTo(x, titleBarHeight/2-ui.titleFont.Ascent()/2)
	s.Print(title)

	switch button {
	case titleButtonBack:
		ui.drawBackButton(false)
	case titleButtonMenu:
		ui.drawMenuButton(false)
	}
}

// backButtonRect returns the bounds of the title bar's Back button. The
// width depends on the title font.
func (ui *UI) backButtonRect() image.Rectangle {
	height := titleBarHeight - 6
	radius := height / 2
	width := radius + arrowWidth*2 + ui.titleFont.StringWidth("Back") + radius - 3
	y := (titleBarHeight - height) / 2
	return image.Rect(4, y, 4+width, y+height)
}

// menuButtonRect returns the bounds of the title bar's hamburger button.
func (ui *UI) menuButtonRect() image.Rectangle {
	height := titleBarHeight - 6
	width := height * 18 / 10
	y := (titleBarHeight - height) / 2
	return image.Rect(4, y, 4+width, y+height)
}

func (ui *UI) drawBackButton(pressed bool) {
	r := ui.backButtonRect()
	radius := r.Dy() / 2
	face := ui.backButtonColor
	if pressed {
		face = ui.backButtonSelected
	}

	s := ui.screen
	s.FillRoundRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), radius, face)

	s.SetFont(ui.titleFont)
	s.SetTextColor(ui.titleBarTextColor)
	s.MoveTo(r.Min.X+radius+arrowWidth*2-2, r.Min.Y+r.Dy()/2-ui.titleFont.Ascent()/2-1)
	s.Print("Back")

	arrowX := r.Min.X + radius - 2
	arrowY := r.Min.Y + radius - 1
	s.FillTriangle(arrowX, arrowY,
		arrowX+arrowWidth, arrowY-arrowWidth/2,
		arrowX+arrowWidth, arrowY+arrowWidth/2,
		ui.titleBarTextColor)
}

func (ui *UI) drawMenuButton(pressed bool) {
	r := ui.menuButtonRect()
	face := ui.backButtonColor
	if pressed {
		face = ui.backButtonSelected
	}

	s := ui.screen
	s.FillRoundRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), r.Dy()/4, face)

	// Three bars.
	barWidth := r.Dx() / 2
	barX := r.Min.X + r.Dx()/2 - barWidth/2
	barY := r.Min.Y + r.Dy()/2 - 1
	s.FillRect(barX, barY-6, barWidth, 2, ui.titleBarTextColor)
	s.FillRect(barX, barY, barWidth, 2, ui.titleBarTextColor)
	s.FillRect(barX, barY+6, barWidth, 2, ui.titleBarTextColor)
}

// BackClicked reports whether ev completed a click of the title bar's Back
// button, drawing touch feedback along the way. It is false unless the
// title bar was drawn with DrawTitleBarWithBack.
func (ui *UI) BackClicked(ev input.Event) bool {
	if ui.titleShows != titleButtonBack {
		return false
	}
	r := ui.backButtonRect()
	switch {
	case ev.Kind == input.Pressed && within(ev, r):
		ui.drawBackButton(true)
	case ev.Kind == input.Released && within(ev, r):
		ui.drawBackButton(false)
		return true
	}
	return false
}

// MenuClicked reports whether ev completed a click of the title bar's
// hamburger button, drawing touch feedback along the way.
func (ui *UI) MenuClicked(ev input.Event) bool {
	if ui.titleShows != titleButtonMenu {
		return false
	}
	r := ui.menuButtonRect()
	switch {
	case ev.Kind == input.Pressed && within(ev, r):
		ui.drawMenuButton(true)
	case ev.Kind == input.Released && within(ev, r):
		ui.drawMenuButton(false)
		return true
	}
	return false
}

// within reports whether the event's coordinates fall inside r.
func within(ev input.Event, r image.Rectangle) bool {
	return ev.X >= r.Min.X && ev.X < r.Max.X && ev.Y >= r.Min.Y && ev.Y < r.Max.Y
}
