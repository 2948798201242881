//go:build !baremetal

// Package sim simulates a touchscreen TFT on the desktop, so user
// interfaces can be developed without an edit-flash-test cycle. The mouse
// plays the part of the finger.
//
// Fyne insists on owning the main loop, which an embedded-style polling
// program can't give it. The window therefore runs in a separate process:
// Open restarts the current binary with a magic argument and the two
// processes talk over stdin/stdout pipes (draw commands one way, mouse
// events the other).
package sim

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/touch"

	"github.com/tinytouch/touchui/input"
)

const runWindowCommand = "run-simulator-window"

func init() {
	if len(os.Args) >= 2 && os.Args[1] == runWindowCommand {
		// This is the window process.
		windowMain()
		os.Exit(0)
	}
}

// Display is a simulated RGB565 display. It implements the display
// interface the touchui package draws on.
type Display struct {
	width  int
	height int
}

// Pointer is the simulated touch panel: the primary mouse button is the
// finger. It implements touch.Pointer with screen coordinates as raw
// samples, so pair it with Calibration().
type Pointer struct{}

// Open starts the window process (once) and returns a display of the given
// size plus its touch pointer.
func Open(width, height int) (*Display, *Pointer) {
	startWindow()
	windowSendCommand(fmt.Sprintf("display %d %d", width, height), nil)
	return &Display{width: width, height: height}, &Pointer{}
}

// SetTitle sets the simulator window title.
func SetTitle(title string) {
	startWindow()
	windowSendCommand("title "+title, nil)
}

// Calibration returns the identity mapping: the simulator's raw samples
// already are screen coordinates.
func Calibration() input.Calibration {
	return input.Calibration{ScaleX: 1, ScaleY: 1}
}

func (d *Display) Size() (x, y int16) {
	return int16(d.width), int16(d.height)
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	windowSendCommand(fmt.Sprintf("fill %d %d 1 1 %d %d %d", x, y, c.R, c.G, c.B), nil)
}

func (d *Display) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if x < 0 || y < 0 || width <= 0 || height <= 0 ||
		int(x+width) > d.width || int(y+height) > d.height {
		return errors.New("sim: drawing out of bounds")
	}
	windowSendCommand(fmt.Sprintf("fill %d %d %d %d %d %d %d", x, y, width, height, c.R, c.G, c.B), nil)
	return nil
}

func (d *Display) FillScreen(c color.RGBA) {
	d.FillRectangle(0, 0, int16(d.width), int16(d.height), c)
}

func (d *Display) DrawRGBBitmap(x, y int16, data []uint16, w, h int16) error {
	if x < 0 || y < 0 || w <= 0 || h <= 0 ||
		int(x+w) > d.width || int(y+h) > d.height {
		return errors.New("sim: drawing out of bounds")
	}
	// Expand RGB565 to the RGB888 the window draws with.
	buf := make([]byte, len(data)*3)
	for i, p := range data {
		r := uint8(p>>8) & 0xf8
		g := uint8(p>>3) & 0xfc
		b := uint8(p << 3)
		buf[i*3+0] = r | r>>5
		buf[i*3+1] = g | g>>6
		buf[i*3+2] = b | b>>5
	}
	windowSendCommand(fmt.Sprintf("draw %d %d %d %d", x, y, w, h), buf)
	return nil
}

// Rotation is fixed in the simulator: pick the shape at Open.
func (d *Display) Rotation() drivers.Rotation {
	return drivers.Rotation0
}

var errNoRotation = errors.New("sim: SetRotation isn't supported, size the window at Open")

func (d *Display) SetRotation(rotation drivers.Rotation) error {
	return errNoRotation
}

func (d *Display) Display() error {
	return nil
}

var mouse struct {
	sync.Mutex
	down bool
	x, y int
}

func (p *Pointer) ReadTouchPoint() touch.Point {
	mouse.Lock()
	defer mouse.Unlock()
	if !mouse.down {
		return touch.Point{}
	}
	return touch.Point{X: mouse.x, Y: mouse.y, Z: 65535}
}

var (
	windowStart  sync.Once
	windowLock   sync.Mutex
	windowStdin  io.WriteCloser
	windowStdout io.ReadCloser
)

// startWindow runs the window in a separate process, starting it if
// necessary.
func startWindow() {
	windowStart.Do(func() {
		windowRunning := make(chan struct{})
		go func() {
			cmd := exec.Command(os.Args[0], runWindowCommand)
			cmd.Stderr = os.Stderr
			windowStdin, _ = cmd.StdinPipe()
			windowStdout, _ = cmd.StdoutPipe()
			err := cmd.Start()
			if err != nil {
				fmt.Fprintln(os.Stderr, "could not start window process:", err)
				os.Exit(1)
			}
			close(windowRunning)
			err = cmd.Wait()
			if err != nil {
				if exitErr, ok := err.(*exec.ExitError); ok {
					os.Exit(exitErr.ExitCode())
				}
				os.Exit(1)
			}
			// The window was closed, so exit.
			os.Exit(0)
		}()
		<-windowRunning

		go windowListenEvents()
	})
}

// windowSendCommand sends one command line to the window process, plus
// optional binary data whose size the command itself must describe.
func windowSendCommand(command string, data []byte) {
	windowLock.Lock()
	defer windowLock.Unlock()

	windowStdin.Write([]byte(command + "\n"))
	windowStdin.Write(data)
}

// windowListenEvents turns mouse events from the window process into the
// shared touch state.
func windowListenEvents() {
	r := bufio.NewReader(windowStdout)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				break
			}
			fmt.Fprintln(os.Stderr, "failed to read events from window process:", err)
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "mousedown", "mousemove":
			var cmd string
			var x, y int
			fmt.Sscanf(line, "%s %d %d", &cmd, &x, &y)
			mouse.Lock()
			if fields[0] == "mousedown" || mouse.down {
				mouse.down = true
				mouse.x, mouse.y = x, y
			}
			mouse.Unlock()
		case "mouseup":
			mouse.Lock()
			mouse.down = false
			mouse.Unlock()
		default:
			fmt.Fprintln(os.Stderr, "unknown event:", fields[0])
		}
	}
}
