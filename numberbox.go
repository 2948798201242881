package touchui

import (
	"strconv"

	"github.com/tinytouch/touchui/input"
)

// NumberBox lets the user adjust an integer with up/down stepper buttons.
// Holding a stepper auto-repeats and accelerates. The caller allocates the
// box, seeds Value and reads it back after every change.
type NumberBox struct {
	Label   string // optional text above the box
	Value   int
	Min     int
	Max     int
	Step    int
	CenterX int
	CenterY int
	Width   int
	Height  int
}

// NumberBoxFloat is NumberBox for floating point values. The number field
// shows Decimals digits after the decimal point.
type NumberBoxFloat struct {
	Label    string
	Value    float64
	Min      float64
	Max      float64
	Step     float64
	Decimals int
	CenterX  int
	CenterY  int
	Width    int
	Height   int
}

// numberBoxGeom is the computed layout: the up button on the left, the
// number field in the middle, the down button on the right.
type numberBoxGeom struct {
	upX     int
	numberX int
	downX   int
	topY    int
	buttonW int
	numberW int
	height  int
	centerY int
}

func numberBoxLayout(centerX, centerY, width, height int) numberBoxGeom {
	buttonW := height * 16 / 10
	if buttonW > width*4/10 {
		buttonW = width * 4 / 10
	}
	if buttonW < 30 {
		buttonW = 30
	}
	numberW := width - 2*buttonW
	if numberW < 30 {
		numberW = 30
	}
	upX := centerX - width/2
	return numberBoxGeom{
		upX:     upX,
		numberX: upX + buttonW,
		downX:   upX + buttonW + numberW,
		topY:    centerY - height/2,
		buttonW: buttonW,
		numberW: numberW,
		height:  height,
		centerY: centerY,
	}
}

// DrawNumberBox draws the whole box: frame, steppers, value and label.
func (ui *UI) DrawNumberBox(nb *NumberBox) {
	g := numberBoxLayout(nb.CenterX, nb.CenterY, nb.Width, nb.Height)
	ui.drawNumberBoxFrame(g, nb.Label)
	ui.drawStepButton(g, true, false)
	ui.drawStepButton(g, false, false)
	ui.drawNumberField(g, strconv.Itoa(nb.Value))
}

// DrawNumberBoxFloat draws the whole box: frame, steppers, value and label.
func (ui *UI) DrawNumberBoxFloat(nb *NumberBoxFloat) {
	g := numberBoxLayout(nb.CenterX, nb.CenterY, nb.Width, nb.Height)
	ui.drawNumberBoxFrame(g, nb.Label)
	ui.drawStepButton(g, true, false)
	ui.drawStepButton(g, false, false)
	ui.drawNumberField(g, strconv.FormatFloat(nb.Value, 'f', nb.Decimals, 64))
}

// NumberBoxTouched updates nb from ev and reports whether Value may have
// changed: true for a press or auto-repeat on either stepper, false
// otherwise. Steps are clamped to [Min, Max]. The longer a stepper is
// held, the bigger the steps get.
func (ui *UI) NumberBoxTouched(ev input.Event, nb *NumberBox) bool {
	g := numberBoxLayout(nb.CenterX, nb.CenterY, nb.Width, nb.Height)
	step, fired := ui.stepperEvent(ev, g)
	if fired && step != 0 {
		v := nb.Value + nb.Step*step
		if v > nb.Max {
			v = nb.Max
		}
		if v < nb.Min {
			v = nb.Min
		}
		if v != nb.Value {
			nb.Value = v
			ui.drawNumberField(g, strconv.Itoa(nb.Value))
		}
	}
	return fired
}

// NumberBoxFloatTouched is NumberBoxTouched for the float variant.
func (ui *UI) NumberBoxFloatTouched(ev input.Event, nb *NumberBoxFloat) bool {
	g := numberBoxLayout(nb.CenterX, nb.CenterY, nb.Width, nb.Height)
	step, fired := ui.stepperEvent(ev, g)
	if fired && step != 0 {
		v := nb.Value + nb.Step*float64(step)
		if v > nb.Max {
			v = nb.Max
		}
		if v < nb.Min {
			v = nb.Min
		}
		if v != nb.Value {
			nb.Value = v
			ui.drawNumberField(g, strconv.FormatFloat(nb.Value, 'f', nb.Decimals, 64))
		}
	}
	return fired
}

// stepperEvent matches ev against the two stepper buttons, draws their
// touch feedback and returns the signed step multiplier. fired is true for
// presses and repeats, the events the caller reports as a change.
func (ui *UI) stepperEvent(ev input.Event, g numberBoxGeom) (step int, fired bool) {
	for _, btn := range [2]struct {
		x  int
		up bool
	}{{g.upX, true}, {g.downX, false}} {
		inX := ev.X >= btn.x && ev.X < btn.x+g.buttonW
		inY := ev.Y >= g.topY && ev.Y < g.topY+g.height
		if !inX || !inY {
			continue
		}
		direction := -1
		if btn.up {
			direction = 1
		}
		switch ev.Kind {
		case input.Pressed:
			ui.drawStepButton(g, btn.up, true)
			ui.repeatCount = 0
			return direction, true
		case input.Repeat:
			ui.repeatCount++
			return direction * (ui.repeatCount/16 + 1), true
		case input.Released:
			ui.drawStepButton(g, btn.up, false)
			return 0, false
		}
	}
	return 0, false
}

// drawNumberBoxFrame draws the outer frame, the raised highlight and the
// optional label above the box.
func (ui *UI) drawNumberBoxFrame(g numberBoxGeom, label string) {
	s := ui.screen
	width := g.downX + g.buttonW - g.upX
	right := g.upX + width

	s.FillRect(g.upX, g.topY, width, 3, ui.menuButtonColor)
	s.FillRect(g.upX, g.topY+g.height-3, width, 3, ui.menuButtonColor)
	s.FillRect(g.upX, g.topY, 3, g.height, ui.menuButtonColor)
	s.FillRect(g.numberX-3, g.topY, 3, g.height, ui.menuButtonColor)
	s.FillRect(g.downX, g.topY, 3, g.height, ui.menuButtonColor)
	s.FillRect(right-3, g.topY, 3, g.height, ui.menuButtonColor)

	s.VLine(g.upX-1, g.topY-1, g.height+1, ui.menuFrameColor)
	s.HLine(g.upX-1, g.topY-1, width+1, ui.menuFrameColor)

	if label != "" {
		s.SetFont(ui.menuFont)
		s.SetTextColor(ui.menuTextColor)
		s.PrintCentered(label, g.numberX+g.numberW/2, g.topY-(ui.menuFont.LineHeight()+2))
	}
}

// drawStepButton draws the up (left) or down (right) stepper.
func (ui *UI) drawStepButton(g numberBoxGeom, up, pressed bool) {
	face := ui.menuButtonColor
	if pressed {
		face = ui.menuSelectedColor
	}
	x := g.downX
	if up {
		x = g.upX
	}
	s := ui.screen
	s.FillRect(x+3, g.topY+3, g.buttonW-6, g.height-6, face)

	const half = 5
	cx := x + g.buttonW/2
	cy := g.centerY
	if up {
		s.FillTriangle(cx, cy-half, cx-half, cy+half, cx+half, cy+half, ui.menuTextColor)
	} else {
		s.FillTriangle(cx-half, cy-half, cx+half, cy-half, cx, cy+half, ui.menuTextColor)
	}
}

// drawNumberField blanks the middle field and draws the value centered.
func (ui *UI) drawNumberField(g numberBoxGeom, text string) {
	s := ui.screen
	s.SetFont(ui.menuFont)
	s.SetTextColor(ui.menuTextColor)
	textY := g.centerY - ui.menuFont.Ascent()/2
	s.FillRect(g.numberX+3, textY, g.numberW-6, ui.menuFont.Ascent()+1, ui.menuBackground)
	s.PrintCentered(text, g.numberX+g.numberW/2, textY)
}
