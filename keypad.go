package touchui

import (
	"strconv"
	"strings"
	"time"
)

// Keypad layout, sized for a 320×240 landscape screen: a 3 wide digit grid
// on the left, the number field top right, OK/Cancel/Del below it.
const (
	keypadKeyW  = 56
	keypadKeyH  = 44
	keypadKeyX  = 35 // center of the first column
	keypadKeyY  = 61 // center of the first row
	keypadStepX = keypadKeyW + 7
	keypadStepY = keypadKeyH + 7

	keypadFieldX = 196
	keypadFieldY = 46
	keypadFieldW = 117
	keypadFieldH = 32

	keypadSideX = 254
	keypadSideY = 111
	keypadSideW = 80

	keypadMaxChars   = 12
	keypadErrorDelay = 1500 * time.Millisecond
)

// KeypadInt shows a modal numeric keypad seeded with *value. It blocks
// until OK stores an in-range number (returns true) or Cancel leaves
// *value untouched (returns false). Entering a number outside [min, max]
// flashes an error in the title bar and keeps editing.
func (ui *UI) KeypadInt(title string, value *int, min, max int) bool {
	v, ok := ui.runKeypad(title, strconv.Itoa(*value), false,
		func(v float64) bool { return v >= float64(min) && v <= float64(max) })
	if ok {
		*value = int(v)
	}
	return ok
}

// KeypadFloat is KeypadInt for floating point values.
func (ui *UI) KeypadFloat(title string, value *float64, min, max float64) bool {
	v, ok := ui.runKeypad(title, keypadSeed(*value), true,
		func(v float64) bool { return v >= min && v <= max })
	if ok {
		*value = v
	}
	return ok
}

// keypadSeed formats the initial float with four decimals, then trims
// trailing zeros and a trailing dot so the user starts from the shortest
// form.
func keypadSeed(v float64) string {
	s := strconv.FormatFloat(v, 'f', 4, 64)
	if len(s) > keypadMaxChars {
		s = s[:keypadMaxChars]
	}
	for len(s) > 2 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	return strings.TrimSuffix(s, ".")
}

// keypadParse is forgiving the way the keypad needs: partial entries like
// "", "-" or "." count as zero.
func keypadParse(text string) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return v
}

// runKeypad draws the keypad and runs its event loop. withDot adds the
// decimal point key and shifts the bottom row the way the float keypad
// lays it out.
func (ui *UI) runKeypad(title, seed string, withDot bool, inRange func(float64) bool) (float64, bool) {
	ui.DrawTitleBar(title)
	ui.ClearDisplaySpace()

	key := func(label string, col, row int) *Button {
		return &Button{
			Label:   label,
			CenterX: keypadKeyX + col*keypadStepX,
			CenterY: keypadKeyY + row*keypadStepY,
			Width:   keypadKeyW,
			Height:  keypadKeyH,
		}
	}
	side := func(label string, row int) *Button {
		return &Button{
			Label:   label,
			CenterX: keypadSideX,
			CenterY: keypadSideY + row*keypadStepY,
			Width:   keypadSideW,
			Height:  keypadKeyH,
		}
	}

	digits := []*Button{
		key("7", 0, 0), key("8", 1, 0), key("9", 2, 0),
		key("4", 0, 1), key("5", 1, 1), key("6", 2, 1),
		key("1", 0, 2), key("2", 1, 2), key("3", 2, 2),
	}
	var dot *Button
	var minus *Button
	if withDot {
		digits = append(digits, key("0", 0, 3))
		dot = key(".", 1, 3)
		minus = key("+/-", 2, 3)
		ui.DrawButton(dot, false)
	} else {
		// No decimal point, keep 0 under the middle column.
		digits = append(digits, key("0", 1, 3))
		minus = key("+/-", 2, 3)
	}
	for _, b := range digits {
		ui.DrawButton(b, false)
	}
	ui.DrawButton(minus, false)

	ok := side("OK", 0)
	cancel := side("Cancel", 1)
	del := side("<", 2)
	ui.DrawButton(ok, false)
	ui.DrawButton(cancel, false)
	ui.DrawButton(del, false)

	ui.screen.Rect(keypadFieldX, keypadFieldY, keypadFieldW, keypadFieldH, White)

	text := seed
	first := true
	show := func() {
		s := ui.screen
		s.FillRect(keypadFieldX+1, keypadFieldY+1, keypadFieldW-2, keypadFieldH-2, ui.menuBackground)
		s.SetFont(ui.menuFont)
		s.SetTextColor(White)
		s.PrintCentered(text, keypadFieldX+keypadFieldW/2, keypadFieldY+(keypadFieldH-ui.menuFont.Ascent())/2)
	}
	add := func(c byte) {
		if len(text) >= keypadMaxChars {
			return
		}
		if first {
			text = ""
		}
		first = false
		text += string(c)
		show()
	}
	show()

	for {
		ev := ui.Poll()

		for _, b := range digits {
			if ui.ButtonClicked(ev, b) {
				add(b.Label[0])
			}
		}
		if dot != nil && ui.ButtonClicked(ev, dot) && !strings.Contains(text, ".") {
			add('.')
		}
		if ui.ButtonClicked(ev, minus) && (first || text == "") {
			add('-')
		}
		if ui.ButtonClicked(ev, del) {
			if text != "" {
				text = text[:len(text)-1]
			}
			first = false
			show()
		}
		if ui.ButtonClicked(ev, ok) {
			v := keypadParse(text)
			if inRange(v) {
				return v, true
			}
			ui.DrawTitleBar(">>> NUMBER OUT OF RANGE <<<")
			// Keep polling (and the idle callback running) while the
			// message shows; touches during the flash are swallowed.
			for deadline := time.Now().Add(keypadErrorDelay); time.Now().Before(deadline); {
				ui.Poll()
				if ui.idle != nil {
					ui.idle()
				}
			}
			ui.DrawTitleBar(title)
		}
		if ui.ButtonClicked(ev, cancel) {
			return 0, false
		}

		if ui.idle != nil {
			ui.idle()
		}
	}
}
