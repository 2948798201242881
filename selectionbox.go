package touchui

import (
	"image"

	"github.com/tinytouch/touchui/input"
)

// SelectionBox is a row of up to four mutually exclusive choices, like a
// radio group. Value is the index of the selected choice.
type SelectionBox struct {
	Label   string // optional text above the box
	Value   int
	Choices []string // 1 to 4 choices, extras are ignored
	CenterX int
	CenterY int
	Width   int
	Height  int
}

func (b *SelectionBox) count() int {
	n := len(b.Choices)
	if n < 1 {
		return 1
	}
	if n > 4 {
		return 4
	}
	return n
}

// cellRect returns the bounds of choice cell i.
func (b *SelectionBox) cellRect(i int) image.Rectangle {
	n := b.count()
	cellW := (b.Width - 3) / n
	overall := cellW * n
	h := b.Height - 3
	x := b.CenterX - overall/2 + i*cellW
	y := b.CenterY - h/2
	return image.Rect(x, y, x+cellW, y+h)
}

// DrawSelectionBox draws the box with its current selection and label.
func (ui *UI) DrawSelectionBox(b *SelectionBox) {
	n := b.count()
	first := b.cellRect(0)
	overall := first.Dx()*n + 2

	s := ui.screen
	s.Rect(first.Min.X-1, first.Min.Y-1, overall, first.Dy()+2, ui.menuButtonColor)
	for i := 0; i < n; i++ {
		ui.drawSelectionCell(b, i, false)
	}

	if b.Label != "" {
		s.SetFont(ui.menuFont)
		s.SetTextColor(ui.menuTextColor)
		s.PrintCentered(b.Label, first.Min.X-1+overall/2, first.Min.Y-(ui.menuFont.LineHeight()+2))
	}
}

// SelectionBoxTouched updates b from ev and reports whether Value changed.
// Pressing a cell selects it immediately; the highlight is dropped when the
// finger lifts.
func (ui *UI) SelectionBoxTouched(ev input.Event, b *SelectionBox) bool {
	if ev.Kind == input.None {
		return false
	}
	n := b.count()
	for i := 0; i < n; i++ {
		r := b.cellRect(i)
		if ev.Kind == input.Pressed && within(ev, r) {
			changed := b.Value != i
			b.Value = i
			for cell := 0; cell < n; cell++ {
				ui.drawSelectionCell(b, cell, true)
			}
			return changed
		}
		if ev.Kind == input.Released && within(ev, r) {
			for cell := 0; cell < n; cell++ {
				ui.drawSelectionCell(b, cell, false)
			}
			return false
		}
	}
	return false
}

// drawSelectionCell draws one cell: background for unselected choices, the
// button color for the selection, highlighted while touched.
func (ui *UI) drawSelectionCell(b *SelectionBox, i int, touched bool) {
	r := b.cellRect(i)

	var fill Color
	switch {
	case i == b.Value && touched:
		fill = ui.menuSelectedColor
	case i == b.Value:
		fill = ui.menuButtonColor
	default:
		fill = ui.menuBackground
	}

	s := ui.screen
	s.Rect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), ui.menuButtonColor)
	s.FillRect(r.Min.X+1, r.Min.Y+1, r.Dx()-2, r.Dy()-2, fill)

	label := ""
	if i < len(b.Choices) {
		label = b.Choices[i]
	}
	s.SetFont(ui.menuFont)
	s.SetTextColor(ui.menuTextColor)
	s.PrintCentered(label, r.Min.X+r.Dx()/2, b.CenterY-ui.menuFont.Ascent()/2)
}
