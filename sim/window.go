//go:build !baremetal

package sim

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/draw"
)

// The screen contents, written by the command reader goroutine and read by
// the fyne render thread.
var (
	windowImage     *image.RGBA
	windowImageLock sync.Mutex
)

// The main function for the window process. It never returns.
func windowMain() {
	windowImage = image.NewRGBA(image.Rect(0, 0, 320, 240))
	display := &displayWidget{}
	display.Generator = func(w, h int) image.Image {
		windowImageLock.Lock()
		defer windowImageLock.Unlock()
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.NearestNeighbor.Scale(img, img.Bounds(), windowImage, windowImage.Bounds(), draw.Src, nil)
		return img
	}
	display.SetMinSize(fyne.NewSize(320, 240))

	a := app.New()
	w := a.NewWindow("simulator")
	w.SetPadded(false)
	w.SetContent(display)

	go windowReceiveCommands(w, display)

	w.ShowAndRun()
}

// Goroutine that applies draw commands from the parent process.
func windowReceiveCommands(w fyne.Window, display *displayWidget) {
	r := bufio.NewReader(os.Stdin)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			// Parent exited, close the window.
			os.Exit(0)
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		var cmd string
		switch fields[0] {
		case "display":
			var width, height int
			fmt.Sscanf(line, "%s %d %d", &cmd, &width, &height)
			windowImageLock.Lock()
			windowImage = image.NewRGBA(image.Rect(0, 0, width, height))
			display.SetMinSize(fyne.NewSize(float32(width), float32(height)))
			windowImageLock.Unlock()
			display.Refresh()
		case "title":
			w.SetTitle(strings.TrimSpace(strings.TrimPrefix(line, "title ")))
		case "fill":
			var x, y, width, height, cr, cg, cb int
			fmt.Sscanf(line, "%s %d %d %d %d %d %d %d", &cmd, &x, &y, &width, &height, &cr, &cg, &cb)
			c := image.NewUniform(color.RGBA{R: uint8(cr), G: uint8(cg), B: uint8(cb), A: 255})
			windowImageLock.Lock()
			draw.Draw(windowImage, image.Rect(x, y, x+width, y+height), c, image.Point{}, draw.Src)
			windowImageLock.Unlock()
			display.Refresh()
		case "draw":
			var x, y, width, height int
			fmt.Sscanf(line, "%s %d %d %d %d", &cmd, &x, &y, &width, &height)
			buf := make([]byte, width*height*3)
			_, err := io.ReadFull(r, buf)
			if err != nil {
				fmt.Fprintln(os.Stderr, "window: could not read bitmap:", err)
				os.Exit(1)
			}
			windowImageLock.Lock()
			for i := 0; i < width*height; i++ {
				windowImage.SetRGBA(x+i%width, y+i/width, color.RGBA{
					R: buf[i*3+0],
					G: buf[i*3+1],
					B: buf[i*3+2],
					A: 255,
				})
			}
			windowImageLock.Unlock()
			display.Refresh()
		default:
			fmt.Fprintln(os.Stderr, "window: unknown command:", fields[0])
		}
	}
}

var _ desktop.Mouseable = (*displayWidget)(nil)
var _ fyne.Draggable = (*displayWidget)(nil)

// Wrapper for canvas.Raster that sends mouse events to the parent process.
type displayWidget struct {
	canvas.Raster
}

func (r *displayWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(&r.Raster)
}

func (r *displayWidget) MouseDown(event *desktop.MouseEvent) {
	if event.Button == desktop.MouseButtonPrimary {
		fmt.Printf("mousedown %d %d\n", int(event.Position.X), int(event.Position.Y))
	}
}

func (r *displayWidget) MouseUp(event *desktop.MouseEvent) {
	if event.Button == desktop.MouseButtonPrimary {
		fmt.Printf("mouseup\n")
	}
}

func (r *displayWidget) Dragged(event *fyne.DragEvent) {
	fmt.Printf("mousemove %d %d\n", int(event.PointEvent.Position.X), int(event.PointEvent.Position.Y))
}

func (r *displayWidget) DragEnd() {
	// handled in MouseUp
}
