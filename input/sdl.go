// SPDX-License-Identifier: GPL-2.0-or-later

package input

import (
	"strings"

	"github.com/veandco/go-sdl2/sdl"

	"gostride/cbuf"
)

// HandleKeyboardEvent feeds one SDL key event into the bind table. Bound
// button commands go through the command buffer so config scripts and real
// keys are handled the same way.
func HandleKeyboardEvent(e *sdl.KeyboardEvent) {
	if e.Repeat != 0 {
		return
	}
	name := strings.ToLower(sdl.GetScancodeName(e.Keysym.Scancode))
	if name == "" {
		return
	}
	text, ok := KeyEvent(name, int(e.Keysym.Scancode), e.State == sdl.PRESSED)
	if !ok {
		return
	}
	cbuf.AddText(text)
}
