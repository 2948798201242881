//go:build !baremetal

// Command demo shows the widget toolkit in the desktop simulator: a menu
// tree with a toggle, number entry through the keypad and a slider screen,
// with the chosen values persisted in an in-memory config store.
package main

import (
	"encoding/binary"

	"github.com/tinytouch/touchui"
	"github.com/tinytouch/touchui/config"
	"github.com/tinytouch/touchui/font"
	"github.com/tinytouch/touchui/sim"
)

const (
	cfgVolume     = 0 // byte
	cfgBrightness = config.ByteSize
)

func main() {
	display, pointer := sim.Open(320, 240)
	sim.SetTitle("touchui demo")

	ui := touchui.New(display, pointer, demoFont())
	ui.Touch().SetCalibration(sim.Calibration())

	store := config.NewStore(config.NewMemory())
	volume := int(store.ReadByte(cfgVolume, 5))
	brightness := int(store.ReadByte(cfgBrightness, 80))
	sound := true

	settings := &touchui.Menu{
		Title:   "Settings",
		Columns: 1,
		Back:    touchui.BackToParent,
		Items: []touchui.Item{
			touchui.Command{Label: "Volume", Do: func() {
				if ui.KeypadInt("Volume", &volume, 0, 10) {
					store.WriteByte(cfgVolume, uint8(volume))
				}
			}},
			touchui.Command{Label: "Brightness", Do: func() {
				brightnessScreen(ui, &brightness)
				store.WriteByte(cfgBrightness, uint8(brightness))
			}},
			touchui.Toggle{
				Label: "Sound",
				State: func() string {
					if sound {
						return "On"
					}
					return "Off"
				},
				Next: func() { sound = !sound },
			},
		},
	}
	root := &touchui.Menu{
		Title:   "Demo",
		Columns: 2,
		Items: []touchui.Item{
			touchui.SubMenu{Label: "Settings", Menu: settings},
			touchui.Command{Label: "About", Do: func() { aboutScreen(ui) }},
		},
	}
	settings.Parent = root

	ui.RunMenu(root)
}

// brightnessScreen adjusts the brightness with a slider and a number box
// until Back is clicked.
func brightnessScreen(ui *touchui.UI, brightness *int) {
	ui.DrawTitleBarWithBack("Brightness")
	ui.ClearDisplaySpace()

	sl := &touchui.Slider{
		Label: "Coarse", Value: *brightness, Min: 0, Max: 100, Step: 5,
		CenterX: 160, CenterY: 100, Width: 240,
	}
	nb := &touchui.NumberBox{
		Label: "Fine", Value: *brightness, Min: 0, Max: 100, Step: 1,
		CenterX: 160, CenterY: 180, Width: 200, Height: 40,
	}
	ui.DrawSlider(sl)
	ui.DrawNumberBox(nb)

	for {
		ev := ui.Poll()
		if ui.BackClicked(ev) {
			*brightness = nb.Value
			return
		}
		if ui.SliderTouched(sl) {
			nb.Value = sl.Value
			ui.DrawNumberBox(nb)
		}
		if ui.NumberBoxTouched(ev, nb) {
			// Keep the slider in sync the cheap way: redraw it.
			sl.Value = nb.Value
			ui.DrawSlider(sl)
		}
	}
}

func aboutScreen(ui *touchui.UI) {
	ui.DrawTitleBarWithBack("About")
	ui.ClearDisplaySpace()
	s := ui.Screen()
	s.SetTextColor(touchui.White)
	s.PrintCentered("touchui demo", 160, 100)
	s.PrintCentered("touch anywhere below", 160, 120)

	for {
		ev := ui.Poll()
		if ui.BackClicked(ev) {
			return
		}
	}
}

// demoFont builds a blocky stand-in font, 4×4 pixel glyphs for every
// character. A real application would link in a compiled font blob.
func demoFont() *font.Font {
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
