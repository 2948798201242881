package touchui

// Radius of the slider's ball.
const sliderBallRadius = 10

// Slider adjusts an integer by dragging a ball along a horizontal track.
// Values snap to the nearest Step multiple.
type Slider struct {
	Label   string // optional text above the slider
	Value   int
	Min     int
	Max     int
	Step    int
	CenterX int
	CenterY int
	Width   int

	dragging bool
}

// ballX returns the ball's center position for the current value.
func (s *Slider) ballX() int {
	f := float32(s.Value-s.Min) / float32(s.Max-s.Min)
	return s.CenterX - s.Width/2 + int(f*float32(s.Width)+0.5)
}

// valueAt maps a touch position to a value: linear across the track,
// snapped to the nearest Step multiple and clamped to [Min, Max].
func (s *Slider) valueAt(x int) int {
	pos := x - (s.CenterX - s.Width/2)
	value := pos*(s.Max-s.Min)/s.Width + s.Min
	if value < s.Min {
		value = s.Min
	}
	if value > s.Max {
		value = s.Max
	}
	value = (value + s.Step/2) / s.Step * s.Step
	if value < s.Min {
		value = s.Min
	}
	if value > s.Max {
		value = s.Max
	}
	return value
}

// DrawSlider draws the track, the ball and the optional label.
func (ui *UI) DrawSlider(sl *Slider) {
	ui.drawSliderBall(sl, ui.menuButtonColor)
	ui.drawSliderTrack(sl)

	if sl.Label != "" {
		s := ui.screen
		s.SetFont(ui.menuFont)
		s.SetTextColor(ui.menuTextColor)
		s.PrintCentered(sl.Label, sl.CenterX, sl.CenterY-sliderBallRadius-(ui.menuFont.LineHeight()+3))
	}
}

func (ui *UI) drawSliderTrack(sl *Slider) {
	half := sl.Width / 2
	ui.screen.HLine(sl.CenterX-half, sl.CenterY, half*2, ui.menuButtonColor)
}

func (ui *UI) drawSliderBall(sl *Slider, c Color) {
	ui.screen.FillCircle(sl.ballX(), sl.CenterY, sliderBallRadius, c)
}

// SliderTouched tracks a drag of sl's ball and reports whether Value
// changed. Unlike the other widgets it works on the live touch position
// rather than debounced events, so call it every poll. A drag starts when
// the finger lands on the ball (give or take two pixels) and ends when it
// lifts.
func (ui *UI) SliderTouched(sl *Slider) bool {
	x, y, touched := ui.touch.Coords()
	if !touched {
		sl.dragging = false
		return false
	}

	if !sl.dragging {
		bx := sl.ballX()
		const grab = sliderBallRadius + 2
		left := bound(bx-grab, 0, ui.screen.Width()-1)
		right := bound(bx+grab, 0, ui.screen.Width()-1)
		top := bound(sl.CenterY-grab, 0, ui.screen.Height()-1)
		bottom := bound(sl.CenterY+grab, 0, ui.screen.Height()-1)
		if x >= left && x <= right && y >= top && y <= bottom {
			sl.dragging = true
		}
		return false
	}

	value := sl.valueAt(x)
	if value == sl.Value {
		return false
	}
	ui.drawSliderBall(sl, ui.menuBackground)
	sl.Value = value
	ui.drawSliderBall(sl, ui.menuButtonColor)
	ui.drawSliderTrack(sl)
	return true
}

func bound(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
