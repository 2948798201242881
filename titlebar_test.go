package touchui

import (
	"testing"

	"github.com/tinytouch/touchui/input"
)

func TestBackClicked(t *testing.T) {
	ui, _, _ := newTestUI(t)
	ui.DrawTitleBarWithBack("Settings")

	r := ui.backButtonRect()
	cx, cy := r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2
	if ui.BackClicked(input.Event{Kind: input.Pressed, X: cx, Y: cy}) {
		t.Error("press reported as a completed click")
	}
	if !ui.BackClicked(input.Event{Kind: input.Released, X: cx, Y: cy}) {
		t.Error("release on the Back button not reported")
	}

	// Without a Back button the same events are ignored.
	ui.DrawTitleBar("Settings")
	ui.BackClicked(input.Event{Kind: input.Pressed, X: cx, Y: cy})
	if ui.BackClicked(input.Event{Kind: input.Released, X: cx, Y: cy}) {
		t.Error("Back reported on a title bar without one")
	}
}

func TestMenuClicked(t *testing.T) {
	ui, _, _ := newTestUI(t)
	ui.DrawTitleBarWithMenu("Main")

	r := ui.menuButtonRect()
	cx, cy := r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2
	ui.MenuClicked(input.Event{Kind: input.Pressed, X: cx, Y: cy})
	if !ui.MenuClicked(input.Event{Kind: input.Released, X: cx, Y: cy}) {
		t.Error("release on the menu button not reported")
	}
	if ui.BackClicked(input.Event{Kind: input.Released, X: cx, Y: cy}) {
		t.Error("a menu button click reported as Back")
	}
}

func TestTitleButtonRects(t *testing.T) {
	ui, _, _ := newTestUI(t)

	back := ui.backButtonRect()
	if back.Min.X != 4 || back.Min.Y != 3 {
		t.Errorf("Back button at %v, want its corner at (4, 3)", back.Min)
	}
	if back.Dy() != titleBarHeight-6 {
		t.Errorf("Back button height = %d, want %d", back.Dy(), titleBarHeight-6)
	}
	if back.Max.Y > titleBarHeight {
		t.Error("Back button leaves the title bar")
	}

	menu := ui.menuButtonRect()
	if menu.Dy() != titleBarHeight-6 || menu.Dx() != (titleBarHeight-6)*18/10 {
		t.Errorf("menu button is %d×%d", menu.Dx(), menu.Dy())
	}
}

func TestTitleBarFill(t *testing.T) {
	ui, _, d := newTestUI(t)
	ui.DrawTitleBar("T")
	if got := d.at(300, 10); got != ui.titleBarColor.RGBA() {
		t.Errorf("title bar pixel = %v, want bar color", got)
	}
	if got := d.at(300, titleBarHeight); got == ui.titleBarColor.RGBA() {
		t.Error("title bar painted below its height")
	}
}
