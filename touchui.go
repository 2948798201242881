// Package touchui is a small widget toolkit for microcontrollers driving a
// touchscreen TFT, typically a 320×240 ILI9341 with a resistive XPT2046
// style controller. It provides a title bar, hierarchical menus built from
// declarative tables, and self-drawing widgets (buttons, number boxes,
// selection boxes, sliders and a numeric keypad), all driven from a single
// polling loop with no interrupts and no goroutines.
//
// The display is any driver implementing Displayer, the touch panel any
// tinygo.org/x/drivers/touch.Pointer. On the desktop the sim package
// provides both.
package touchui

import (
	"image"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/touch"

	"github.com/tinytouch/touchui/font"
	"github.com/tinytouch/touchui/input"
)

// Height of the title bar in pixels.
const titleBarHeight = 34

type titleButton uint8

const (
	titleButtonNone titleButton = iota
	titleButtonBack
	titleButtonMenu
)

// UI owns the screen, the touch channel and the colors and fonts shared by
// all widgets. It is not safe for concurrent use; everything runs in the
// caller's polling loop.
type UI struct {
	screen *Screen
	touch  *input.Channel

	titleBarColor      Color
	titleBarTextColor  Color
	backButtonColor    Color
	backButtonSelected Color

	menuBackground    Color
	menuButtonColor   Color
	menuSelectedColor Color
	menuFrameColor    Color
	menuTextColor     Color

	titleFont *font.Font
	menuFont  *font.Font

	space image.Rectangle

	titleText   string
	titleShows  titleButton
	currentMenu *Menu
	idle        func()

	// Auto-repeat acceleration counter shared by the stepper widgets.
	// Only one widget can be held down at a time.
	repeatCount int
}

// New returns a UI on an already configured display and touch panel, using
// f for the title bar, menus and general text until the font setters say
// otherwise. The blue palette is selected.
func New(display Displayer, pointer touch.Pointer, f *font.Font) *UI {
	screen := NewScreen(display)
	ui := &UI{
		screen:    screen,
		touch:     input.NewChannel(pointer, screen.Width(), screen.Height(), display.Rotation()),
		titleFont: f,
		menuFont:  f,
	}
	screen.SetFont(f)
	ui.SetPaletteBlue()
	ui.computeDisplaySpace()
	return ui
}

// Screen returns the drawing surface for application graphics.
func (ui *UI) Screen() *Screen {
	return ui.screen
}

// Touch returns the touch channel, for calibration overrides or for
// reading live coordinates.
func (ui *UI) Touch() *input.Channel {
	return ui.touch
}

// Poll reads one touch sample and returns the resulting event, Kind None
// most of the time. Call it continuously from the main loop and hand the
// event to the widget check methods.
func (ui *UI) Poll() input.Event {
	return ui.touch.Poll()
}

// SetIdleFunc registers a callback run once per poll inside the blocking
// loops (RunMenu and the keypads), so background work keeps running while
// a menu is on screen.
func (ui *UI) SetIdleFunc(f func()) {
	ui.idle = f
}

// SetRotation rotates the display, resets the touch calibration to the new
// rotation's defaults and recomputes the display space.
func (ui *UI) SetRotation(rotation drivers.Rotation) {
	ui.screen.SetRotation(rotation)
	ui.touch.Resize(ui.screen.Width(), ui.screen.Height(), rotation)
	ui.computeDisplaySpace()
}

// computeDisplaySpace lays out the area below the title bar, inset one
// pixel on the left, right and bottom.
func (ui *UI) computeDisplaySpace() {
	ui.space = image.Rect(1, titleBarHeight, ui.screen.Width()-1, ui.screen.Height()-1)
}

// DisplaySpace returns the drawable area below the title bar.
func (ui *UI) DisplaySpace() image.Rectangle {
	return ui.space
}

// ClearDisplaySpace fills the display space with the menu background color.
func (ui *UI) ClearDisplaySpace() {
	ui.ClearDisplaySpaceTo(ui.menuBackground)
}

// ClearDisplaySpaceTo fills the display space with the given color.
func (ui *UI) ClearDisplaySpaceTo(c Color) {
	ui.screen.FillRect(ui.space.Min.X, ui.space.Min.Y, ui.space.Dx(), ui.space.Dy(), c)
}

// SetTitleFont sets the font used by the title bar and its buttons.
func (ui *UI) SetTitleFont(f *font.Font) {
	ui.titleFont = f
}

// SetMenuFont sets the font used by menu and widget labels.
func (ui *UI) SetMenuFont(f *font.Font) {
	ui.menuFont = f
}

// SetTitleBarColors sets the title bar background and text colors and the
// normal and pressed face colors of its Back/Menu button.
func (ui *UI) SetTitleBarColors(bar, text, button, buttonSelected Color) {
	ui.titleBarColor = bar
	ui.titleBarTextColor = text
	ui.backButtonColor = button
	ui.backButtonSelected = buttonSelected
}

// SetMenuColors sets the menu background and the face, pressed face, frame
// and text colors used by menu buttons and the other widgets.
func (ui *UI) SetMenuColors(background, button, buttonSelected, frame, text Color) {
	ui.menuBackground = background
	ui.menuButtonColor = button
	ui.menuSelectedColor = buttonSelected
	ui.menuFrameColor = frame
	ui.menuTextColor = text
}

// SetPaletteBlue selects the blue color scheme, the default.
func (ui *UI) SetPaletteBlue() {
	ui.SetTitleBarColors(Blue, White, DarkBlue, 0x8c5f)
	ui.SetMenuColors(Black, Blue, 0x8c5f, LightBlue, White)
}

// SetPaletteGray selects the gray color scheme.
func (ui *UI) SetPaletteGray() {
	titleBar := MakeColor(11, 22, 6)
	button := MakeColor(9, 18, 5)
	selected := MakeColor(16, 32, 11)
	frame := MakeColor(12, 24, 8)
	ui.SetTitleBarColors(titleBar, White, button, selected)
	ui.SetMenuColors(Black, button, selected, frame, White)
}
