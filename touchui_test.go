package touchui

import (
	"encoding/binary"
	"image"
	"image/color"
	"sync"
	"testing"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/touch"

	"github.com/tinytouch/touchui/font"
	"github.com/tinytouch/touchui/input"
)

// testDisplay is an in-memory display that records every pixel.
type testDisplay struct {
	width    int
	height   int
	rotation drivers.Rotation
	pix      []color.RGBA
}

func newTestDisplay(width, height int) *testDisplay {
	return &testDisplay{
		width:  width,
		height: height,
		pix:    make([]color.RGBA, width*height),
	}
}

func (d *testDisplay) at(x, y int) color.RGBA {
	return d.pix[y*d.width+x]
}

func (d *testDisplay) Size() (x, y int16) {
	return int16(d.width), int16(d.height)
}

func (d *testDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || int(x) >= d.width || int(y) >= d.height {
		return
	}
	d.pix[int(y)*d.width+int(x)] = c
}

func (d *testDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	for yy := y; yy < y+height; yy++ {
		for xx := x; xx < x+width; xx++ {
			d.SetPixel(xx, yy, c)
		}
	}
	return nil
}

func (d *testDisplay) FillScreen(c color.RGBA) {
	d.FillRectangle(0, 0, int16(d.width), int16(d.height), c)
}

func (d *testDisplay) DrawRGBBitmap(x, y int16, data []uint16, w, h int16) error {
	for i, p := range data {
		d.SetPixel(x+int16(i%int(w)), y+int16(i/int(w)), Color(p).RGBA())
	}
	return nil
}

func (d *testDisplay) SetRotation(rotation drivers.Rotation) error {
	sideways := func(r drivers.Rotation) bool {
		return r == drivers.Rotation90 || r == drivers.Rotation270
	}
	if sideways(rotation) != sideways(d.rotation) {
		d.width, d.height = d.height, d.width
		d.pix = make([]color.RGBA, d.width*d.height)
	}
	d.rotation = rotation
	return nil
}

func (d *testDisplay) Rotation() drivers.Rotation {
	return d.rotation
}

func (d *testDisplay) Display() error {
	return nil
}

// stubPointer is a touch panel the test presses programmatically. It is
// locked because the keypad tests poll it from another goroutine.
type stubPointer struct {
	mu sync.Mutex
	p  touch.Point
}

func (p *stubPointer) ReadTouchPoint() touch.Point {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.p
}

func (p *stubPointer) press(x, y int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.p = touch.Point{X: x, Y: y, Z: 65535}
}

func (p *stubPointer) release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.p = touch.Point{}
}

// testFont builds a fixed width font blob: every glyph is 4 columns wide
// with the top 4 rows set, so any character advances the cursor by 5.
func testFont() *font.Font {
	const width = 4
	data := []byte{8, 1, 2, 1, 0}
	data = append(data, make([]byte, 96*2)...)
	for i := 0; i < 96; i++ {
		binary.LittleEndian.PutUint16(data[5+2*i:], uint16(len(data)))
		data = append(data, width)
		for col := 0; col < width; col++ {
			data = append(data, 0x0f, 0x00)
		}
	}
	return font.New(data)
}

// newTestUI returns a UI on a 320×240 fake display with an identity touch
// calibration, so stubPointer coordinates are screen coordinates.
func newTestUI(t *testing.T) (*UI, *stubPointer, *testDisplay) {
	t.Helper()
	d := newTestDisplay(320, 240)
	p := &stubPointer{}
	ui := New(d, p, testFont())
	ui.Touch().SetCalibration(input.Calibration{ScaleX: 1, ScaleY: 1})
	return ui, p, d
}

func TestDisplaySpace(t *testing.T) {
	ui, _, _ := newTestUI(t)
	want := image.Rect(1, 34, 319, 239)
	if ui.DisplaySpace() != want {
		t.Errorf("DisplaySpace() = %v, want %v", ui.DisplaySpace(), want)
	}
}

func TestSetRotation(t *testing.T) {
	ui, _, _ := newTestUI(t)
	ui.SetRotation(drivers.Rotation90)
	if w, h := ui.Screen().Width(), ui.Screen().Height(); w != 240 || h != 320 {
		t.Fatalf("screen size after rotation = %d×%d, want 240×320", w, h)
	}
	want := image.Rect(1, 34, 239, 319)
	if ui.DisplaySpace() != want {
		t.Errorf("DisplaySpace() = %v, want %v", ui.DisplaySpace(), want)
	}
}

func TestClearDisplaySpaceTo(t *testing.T) {
	ui, _, d := newTestUI(t)
	ui.ClearDisplaySpaceTo(Red)
	if got := d.at(100, 100); got != Red.RGBA() {
		t.Errorf("pixel inside display space = %v, want red", got)
	}
	if got := d.at(0, 0); got == Red.RGBA() {
		t.Error("title bar pixel was painted over")
	}
}
