// SPDX-License-Identifier: GPL-2.0-or-later

package window

import (
	"log"

	"github.com/veandco/go-sdl2/sdl"
)

var (
	window *sdl.Window
)

func Get() *sdl.Window {
	return window
}

func Size() (int, int) {
	w, h := window.GetSize()
	return int(w), int(h)
}

func Shutdown() {
	if window == nil {
		return
	}
	window.Destroy()
	window = nil
}

func InputFocus() bool {
	return window.GetFlags()&(sdl.WINDOW_MOUSE_FOCUS|sdl.WINDOW_INPUT_FOCUS) != 0
}

// SetMode creates the window on first call and resizes it afterwards.
func SetMode(width, height int32) {
	if window == nil {
		w, err := sdl.CreateWindow("GoStride",
			sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
			width, height, uint32(sdl.WINDOW_SHOWN))
		if err != nil {
			log.Fatalf("Couldn't create window: %v", err)
		}
		window = w
		return
	}
	window.SetSize(width, height)
}
