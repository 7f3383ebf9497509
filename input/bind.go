// SPDX-License-Identifier: GPL-2.0-or-later

package input

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gostride/cmd"
	"gostride/conlog"
)

// key name -> command string, e.g. "w" -> "+forward"
var bindings = make(map[string]string)

func init() {
	cmd.Must(cmd.AddCommand("bind", bind))
	cmd.Must(cmd.AddCommand("unbind", unbind))
	cmd.Must(cmd.AddCommand("unbindall", unbindAll))
}

func bind(a cmd.Arguments) error {
	args := a.Args()[1:]
	switch len(args) {
	case 1:
		k := strings.ToLower(args[0].String())
		if b, ok := bindings[k]; ok {
			conlog.Printf("\"%s\" = \"%s\"\n", k, b)
		} else {
			conlog.Printf("\"%s\" is not bound\n", k)
		}
	case 2:
		bindings[strings.ToLower(args[0].String())] = args[1].String()
	default:
		conlog.Printf("bind <key> [command] : attach a command to a key\n")
	}
	return nil
}

func unbind(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 1 {
		conlog.Printf("unbind <key> : remove commands from a key\n")
		return nil
	}
	delete(bindings, strings.ToLower(args[0].String()))
	return nil
}

func unbindAll(_ cmd.Arguments) error {
	clear(bindings)
	return nil
}

// WriteBindings emits bind commands for every binding, for config files.
func WriteBindings(w io.Writer) {
	keys := make([]string, 0, len(bindings))
	for k := range bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "bind \"%s\" \"%s\"\n", k, bindings[k])
	}
}

// Binding returns the command bound to a key name.
func Binding(key string) (string, bool) {
	b, ok := bindings[strings.ToLower(key)]
	return b, ok
}

// KeyEvent translates a named key going down or up into the bound button
// commands. The returned text is meant for the command buffer. keyNum
// identifies the physical key so two keys bound to the same button release
// correctly.
func KeyEvent(key string, keyNum int, down bool) (string, bool) {
	b, ok := Binding(key)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(b, "+") {
		if down {
			return fmt.Sprintf("%s %d\n", b, keyNum), true
		}
		return fmt.Sprintf("-%s %d\n", b[1:], keyNum), true
	}
	if !down {
		return "", false
	}
	return b + "\n", true
}
