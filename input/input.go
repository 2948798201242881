// Package input turns raw samples from a resistive touch controller into
// debounced press, release and auto-repeat events.
//
// The caller polls a Channel in its main loop. Each Poll reads one sample
// from the touch controller and advances a small state machine, so a touch
// is only reported once it has been stable for the debounce period and a
// release only once the panel has been quiet for the same period. Noise
// spikes in either direction are dropped without any event.
package input

import (
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/touch"
)

// EventKind describes what happened on the touch panel.
type EventKind uint8

const (
	// None means nothing happened during this poll.
	None EventKind = iota
	// Pressed is reported once when a touch has been confirmed.
	Pressed
	// Released is reported once when the finger has been lifted.
	Released
	// Repeat is reported periodically while the finger stays down.
	Repeat
)

// Event is a single debounced touch event. For Released and Repeat events
// the coordinates are the ones recorded when the touch was first confirmed,
// not the current finger position.
type Event struct {
	Kind EventKind
	X    int
	Y    int
}

const (
	debouncePeriod  = 30 * time.Millisecond
	autoRepeatDelay = 800 * time.Millisecond
	autoRepeatRate  = 120 * time.Millisecond

	// Z values from tinygo.org/x/drivers touch drivers are scaled to 16
	// bits, a light press easily clears this.
	defaultPressureThreshold = 8192
)

// Calibration maps raw controller samples to screen coordinates:
//
//	screen = raw/Scale - Offset
//
// clamped to the screen bounds. The constants depend on the panel and on
// the display rotation, see DefaultCalibration.
type Calibration struct {
	OffsetX int
	ScaleX  float32
	OffsetY int
	ScaleY  float32
}

// DefaultCalibration returns calibration constants that work reasonably
// well for common ILI9341 + XPT2046 modules with 12-bit raw samples. Panels
// vary, use Channel.SetCalibration for anything precise.
func DefaultCalibration(rotation drivers.Rotation) Calibration {
	switch rotation {
	case drivers.Rotation90:
		return Calibration{OffsetX: 17, ScaleX: 11.07, OffsetY: 20, ScaleY: 14.90}
	case drivers.Rotation180:
		return Calibration{OffsetX: 20, ScaleX: 14.90, OffsetY: 35, ScaleY: 11.07}
	case drivers.Rotation270:
		return Calibration{OffsetX: 35, ScaleX: 11.06, OffsetY: 19, ScaleY: 14.84}
	default:
		return Calibration{OffsetX: 16, ScaleX: 14.90, OffsetY: 17, ScaleY: 11.07}
	}
}

type state uint8

const (
	stateIdle state = iota
	stateConfirmDown
	stateDown
	stateRepeating
	stateConfirmUp
)

// Channel debounces a touch.Pointer into Events.
type Channel struct {
	pointer  touch.Pointer
	cal      Calibration
	width    int
	height   int
	pressure int

	st       state
	deadline time.Time
	repeatAt time.Time
	x, y     int

	now func() time.Time
}

// NewChannel returns a Channel for a touch panel covering a width×height
// screen in the given rotation, using the rotation's default calibration.
func NewChannel(pointer touch.Pointer, width, height int, rotation drivers.Rotation) *Channel {
	return &Channel{
		pointer:  pointer,
		cal:      DefaultCalibration(rotation),
		width:    width,
		height:   height,
		pressure: defaultPressureThreshold,
		now:      time.Now,
	}
}

// SetCalibration overrides the raw-to-screen mapping.
func (c *Channel) SetCalibration(cal Calibration) {
	c.cal = cal
}

// SetPressureThreshold sets the minimum Z sample that counts as a touch.
func (c *Channel) SetPressureThreshold(z int) {
	c.pressure = z
}

// Resize updates the screen size and resets the calibration to the
// defaults for the new rotation. Call it after rotating the display.
func (c *Channel) Resize(width, height int, rotation drivers.Rotation) {
	c.width = width
	c.height = height
	c.cal = DefaultCalibration(rotation)
}

// Coords reads one raw sample and returns the live calibrated position.
// Unlike Poll it does no debouncing, which is what drag-style widgets such
// as sliders want.
func (c *Channel) Coords() (x, y int, touched bool) {
	p := c.pointer.ReadTouchPoint()
	if p.Z < c.pressure {
		return 0, 0, false
	}
	x = bound(int(float32(p.X)/c.cal.ScaleX)-c.cal.OffsetX, 0, c.width-1)
	y = bound(int(float32(p.Y)/c.cal.ScaleY)-c.cal.OffsetY, 0, c.height-1)
	return x, y, true
}

// Poll reads one sample and advances the debounce state machine. It never
// blocks. Most polls return an Event with Kind None.
func (c *Channel) Poll() Event {
	x, y, touched := c.Coords()
	now := c.now()

	switch c.st {
	case stateIdle:
		if touched {
			c.st = stateConfirmDown
			c.deadline = now.Add(debouncePeriod)
		}

	case stateConfirmDown:
		if now.Before(c.deadline) {
			// Contact may bounce freely inside the debounce window.
			break
		}
		if !touched {
			// False alarm, drop it without an event.
			c.st = stateIdle
			break
		}
		c.x, c.y = x, y
		c.st = stateDown
		c.repeatAt = now.Add(autoRepeatDelay)
		return Event{Kind: Pressed, X: c.x, Y: c.y}

	case stateDown, stateRepeating:
		if !touched {
			c.st = stateConfirmUp
			c.deadline = now.Add(debouncePeriod)
			break
		}
		if !now.Before(c.repeatAt) {
			c.st = stateRepeating
			c.repeatAt = now.Add(autoRepeatRate)
			return Event{Kind: Repeat, X: c.x, Y: c.y}
		}

	case stateConfirmUp:
		if touched {
			// Still bouncing, wait for a quiet period.
			c.deadline = now.Add(debouncePeriod)
			break
		}
		if !now.Before(c.deadline) {
			c.st = stateIdle
			return Event{Kind: Released, X: c.x, Y: c.y}
		}
	}
	return Event{}
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
