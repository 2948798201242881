package touchui

import (
	"image"

	"github.com/tinytouch/touchui/input"
)

// Padding around and between menu buttons.
const menuPadding = 10

// BackMode selects what the title bar's Back button does while a menu is
// shown.
type BackMode uint8

const (
	// BackExits leaves RunMenu and returns to the application.
	BackExits BackMode = iota
	// BackToParent switches to the menu's Parent.
	BackToParent
	// BackHidden draws no Back button; the menu is the whole application.
	BackHidden
)

// Item is a row in a menu table: a Command, a Toggle or a SubMenu.
type Item interface {
	itemLabel() string
}

// Command runs Do when clicked, then redraws the menu (Do is free to draw
// whatever it wants, RunMenu cleans up after it).
type Command struct {
	Label string
	Do    func()
}

// Toggle cycles through a set of states. State returns the label of the
// current state, shown on the button as "Label:  State". Next advances to
// the next state; the button is redrawn afterwards.
type Toggle struct {
	Label string
	State func() string
	Next  func()
}

// SubMenu descends into another menu. Set that menu's Parent and
// BackToParent to come back.
type SubMenu struct {
	Label string
	Menu  *Menu
}

func (c Command) itemLabel() string { return c.Label }
func (t Toggle) itemLabel() string  { return t.Label }
func (s SubMenu) itemLabel() string { return s.Label }

// Menu is a declarative table of items, tiled as equally sized buttons in
// the display space.
type Menu struct {
	Title   string
	Columns int // 1 to 4, out of range values draw a single column
	Back    BackMode
	Parent  *Menu // the menu BackToParent returns to
	Items   []Item
}

func (m *Menu) columns() int {
	if m.Columns < 1 || m.Columns > 4 {
		return 1
	}
	return m.Columns
}

// RunMenu shows m and runs the menu system until a Back button configured
// with BackExits is clicked. Commands and toggles are executed as the user
// clicks them; the idle callback, if set, runs once per poll.
func (ui *UI) RunMenu(m *Menu) {
	ui.selectMenu(m)
	for {
		ev := ui.Poll()
		if ui.menuStep(ev) {
			return
		}
		if ui.idle != nil {
			ui.idle()
		}
	}
}

// selectMenu makes m current and draws it: title bar, cleared display
// space and all buttons.
func (ui *UI) selectMenu(m *Menu) {
	ui.currentMenu = m
	if m.Back == BackHidden {
		ui.DrawTitleBar(m.Title)
	} else {
		ui.DrawTitleBarWithBack(m.Title)
	}
	ui.ClearDisplaySpace()
	for i := range m.Items {
		ui.drawMenuItem(m, i, false)
	}
}

// menuStep handles one polled event for the current menu and reports
// whether the menu system should exit.
func (ui *UI) menuStep(ev input.Event) bool {
	m := ui.currentMenu
	if ev.Kind == input.None {
		return false
	}

	if ui.BackClicked(ev) {
		switch m.Back {
		case BackToParent:
			if m.Parent == nil {
				return true
			}
			ui.selectMenu(m.Parent)
		case BackExits:
			return true
		}
		return false
	}

	if idx := ui.menuIndexAt(m, ev.X, ev.Y); idx >= 0 {
		switch ev.Kind {
		case input.Pressed:
			ui.drawMenuItem(m, idx, true)
		case input.Released:
			ui.drawMenuItem(m, idx, false)
			ui.executeMenuItem(m, idx)
		}
	}
	return false
}

func (ui *UI) executeMenuItem(m *Menu, idx int) {
	switch item := m.Items[idx].(type) {
	case SubMenu:
		ui.selectMenu(item.Menu)
	case Command:
		item.Do()
		// The command may have drawn its own screens.
		ui.selectMenu(m)
	case Toggle:
		item.Next()
		ui.drawMenuItem(m, idx, false)
	}
}

func (ui *UI) drawMenuItem(m *Menu, idx int, pressed bool) {
	r := menuItemRect(ui.space, m.columns(), len(m.Items), idx)

	label := m.Items[idx].itemLabel()
	if t, ok := m.Items[idx].(Toggle); ok {
		label += ":  " + t.State()
	}

	face := ui.menuButtonColor
	if pressed {
		face = ui.menuSelectedColor
	}
	ui.drawButtonFace(r, label, face, ui.menuFrameColor, ui.menuTextColor)

	if _, ok := m.Items[idx].(SubMenu); ok {
		arrowX := r.Max.X - 18
		cy := r.Min.Y + r.Dy()/2
		ui.screen.FillTriangle(arrowX, cy-arrowWidth/2,
			arrowX+arrowWidth, cy,
			arrowX, cy+arrowWidth/2,
			ui.menuTextColor)
	}
}

// menuIndexAt returns the index of the menu button at (x, y), or -1.
func (ui *UI) menuIndexAt(m *Menu, x, y int) int {
	for i := range m.Items {
		r := menuItemRect(ui.space, m.columns(), len(m.Items), i)
		if x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y {
			return i
		}
	}
	return -1
}

// menuItemRect computes the bounds of one menu button. Buttons tile the
// display space in a columns wide grid with 10 pixel padding and gutters,
// all the same size. The grid is centered, and so is a short last row.
func menuItemRect(space image.Rectangle, columns, count, index int) image.Rectangle {
	rows := (count + columns - 1) / columns

	width := (space.Dx() - menuPadding*2 - menuPadding*(columns-1)) / columns
	height := (space.Dy() - menuPadding*2 - menuPadding*(rows-1)) / rows

	// Integer division above loses pixels, recompute the padding so the
	// grid stays centered.
	topPadding := (space.Dy() - height*rows - menuPadding*(rows-1)) / 2

	row := index / columns
	col := index % columns

	onThisRow := columns
	if row == rows-1 && count%columns != 0 {
		onThisRow = count % columns
	}
	leftmost := space.Min.X + (space.Dx()-width*onThisRow-menuPadding*(onThisRow-1))/2

	x := leftmost + (width+menuPadding)*col
	y := space.Min.Y + topPadding + (height+menuPadding)*row
	return image.Rect(x, y, x+width, y+height)
}
