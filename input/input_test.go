package input

import (
	"testing"
	"time"

	"tinygo.org/x/drivers/touch"
)

type fakePointer struct {
	point touch.Point
}

func (f *fakePointer) ReadTouchPoint() touch.Point {
	return f.point
}

func (f *fakePointer) press(x, y int) {
	f.point = touch.Point{X: x, Y: y, Z: 65535}
}

func (f *fakePointer) release() {
	f.point = touch.Point{}
}

// newTestChannel returns a channel with identity calibration on a 320×240
// screen and a clock the test advances by hand.
func newTestChannel() (*Channel, *fakePointer, *time.Time) {
	ptr := &fakePointer{}
	c := NewChannel(ptr, 320, 240, 0)
	c.SetCalibration(Calibration{ScaleX: 1, ScaleY: 1})
	now := time.Unix(0, 0)
	c.now = func() time.Time { return now }
	return c, ptr, &now
}

func TestPressAndRelease(t *testing.T) {
	c, ptr, now := newTestChannel()

	ptr.press(50, 60)
	if ev := c.Poll(); ev.Kind != None {
		t.Fatalf("expected no event while confirming, got %v", ev)
	}
	*now = now.Add(30 * time.Millisecond)
	ev := c.Poll()
	if ev.Kind != Pressed || ev.X != 50 || ev.Y != 60 {
		t.Fatalf("expected Pressed at (50,60), got %+v", ev)
	}

	ptr.release()
	if ev := c.Poll(); ev.Kind != None {
		t.Fatalf("expected no event while confirming release, got %v", ev)
	}
	*now = now.Add(30 * time.Millisecond)
	ev = c.Poll()
	if ev.Kind != Released || ev.X != 50 || ev.Y != 60 {
		t.Fatalf("expected Released at (50,60), got %+v", ev)
	}
}

func TestShortTouchIsDropped(t *testing.T) {
	c, ptr, now := newTestChannel()

	ptr.press(10, 10)
	c.Poll()
	*now = now.Add(10 * time.Millisecond)
	ptr.release()
	for i := 0; i < 20; i++ {
		*now = now.Add(10 * time.Millisecond)
		if ev := c.Poll(); ev.Kind != None {
			t.Fatalf("noise spike produced event %+v", ev)
		}
	}
}

func TestBounceDuringPressIsAbsorbed(t *testing.T) {
	c, ptr, now := newTestChannel()

	// Contact bounce on the down edge: the panel drops out for one sample
	// inside the debounce window. The touch still confirms on time.
	ptr.press(40, 50)
	c.Poll()
	*now = now.Add(10 * time.Millisecond)
	ptr.release()
	if ev := c.Poll(); ev.Kind != None {
		t.Fatalf("bounce inside debounce window produced event %+v", ev)
	}
	*now = now.Add(10 * time.Millisecond)
	ptr.press(40, 50)
	if ev := c.Poll(); ev.Kind != None {
		t.Fatalf("expected no event before debounce elapsed, got %+v", ev)
	}
	*now = now.Add(10 * time.Millisecond)
	ev := c.Poll()
	if ev.Kind != Pressed || ev.X != 40 || ev.Y != 50 {
		t.Fatalf("expected Pressed at the end of the debounce window, got %+v", ev)
	}
}

func TestCoordinatesFrozenAtConfirm(t *testing.T) {
	c, ptr, now := newTestChannel()

	ptr.press(50, 60)
	c.Poll()
	*now = now.Add(30 * time.Millisecond)
	ptr.press(52, 61) // finger drifted during debounce
	ev := c.Poll()
	if ev.Kind != Pressed || ev.X != 52 || ev.Y != 61 {
		t.Fatalf("expected Pressed at confirm-time position (52,61), got %+v", ev)
	}

	// Drag far away, then hold long enough for a repeat.
	ptr.press(200, 200)
	*now = now.Add(800 * time.Millisecond)
	ev = c.Poll()
	if ev.Kind != Repeat || ev.X != 52 || ev.Y != 61 {
		t.Fatalf("expected Repeat at recorded position, got %+v", ev)
	}

	ptr.release()
	c.Poll()
	*now = now.Add(30 * time.Millisecond)
	ev = c.Poll()
	if ev.Kind != Released || ev.X != 52 || ev.Y != 61 {
		t.Fatalf("expected Released at recorded position, got %+v", ev)
	}
}

func TestAutoRepeatCount(t *testing.T) {
	c, ptr, now := newTestChannel()

	ptr.press(100, 100)
	c.Poll()
	*now = now.Add(30 * time.Millisecond)
	if ev := c.Poll(); ev.Kind != Pressed {
		t.Fatalf("expected Pressed, got %+v", ev)
	}

	// Hold for 1490ms past the confirmed press, polling every 10ms.
	// Repeats fire at 800, 920, 1040, ... so floor((1490-800)/120)+1 = 6.
	repeats := 0
	for i := 0; i < 149; i++ {
		*now = now.Add(10 * time.Millisecond)
		switch ev := c.Poll(); ev.Kind {
		case Repeat:
			repeats++
		case None:
		default:
			t.Fatalf("unexpected event %+v", ev)
		}
	}
	if repeats != 6 {
		t.Errorf("expected 6 repeats, got %d", repeats)
	}
}

func TestBounceDuringReleaseRestartsDebounce(t *testing.T) {
	c, ptr, now := newTestChannel()

	ptr.press(10, 20)
	c.Poll()
	*now = now.Add(30 * time.Millisecond)
	c.Poll() // Pressed

	ptr.release()
	c.Poll()
	*now = now.Add(20 * time.Millisecond)
	ptr.press(10, 20) // contact bounce
	c.Poll()
	ptr.release()
	*now = now.Add(20 * time.Millisecond)
	if ev := c.Poll(); ev.Kind != None {
		t.Fatalf("released before debounce elapsed: %+v", ev)
	}
	*now = now.Add(10 * time.Millisecond)
	if ev := c.Poll(); ev.Kind != Released {
		t.Fatalf("expected Released after quiet period, got %+v", ev)
	}
}

func TestCalibration(t *testing.T) {
	ptr := &fakePointer{}
	c := NewChannel(ptr, 320, 240, 0)
	c.SetCalibration(Calibration{OffsetX: 10, ScaleX: 10, OffsetY: 5, ScaleY: 12.5})

	for _, tc := range []struct {
		rawX, rawY int
		x, y       int
	}{
		{1100, 1000, 100, 75},
		{0, 0, 0, 0},             // clamped low
		{40950, 40950, 319, 239}, // clamped high
	} {
		ptr.press(tc.rawX, tc.rawY)
		x, y, touched := c.Coords()
		if !touched || x != tc.x || y != tc.y {
			t.Errorf("raw (%d,%d): got (%d,%d,%v), want (%d,%d)",
				tc.rawX, tc.rawY, x, y, touched, tc.x, tc.y)
		}
	}
}

func TestPressureThreshold(t *testing.T) {
	ptr := &fakePointer{}
	c := NewChannel(ptr, 320, 240, 0)
	ptr.point = touch.Point{X: 100, Y: 100, Z: 100}
	if _, _, touched := c.Coords(); touched {
		t.Error("light contact should not register as a touch")
	}
	c.SetPressureThreshold(50)
	if _, _, touched := c.Coords(); !touched {
		t.Error("touch below custom threshold not registered")
	}
}
