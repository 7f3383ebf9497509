// SPDX-License-Identifier: GPL-2.0-or-later

// package cbuf buffers config and console text and executes it line by line.
package cbuf

import (
	"gostride/cmd"
	"gostride/conlog"
)

// Efunc tries to execute one parsed line. It reports whether it was
// responsible for the command.
type Efunc func(a cmd.Arguments) (bool, error)

var (
	buf       string
	executors []Efunc
	// toggle to add a wait, causing the following commands to be executed
	// one frame later
	wait bool
)

func init() {
	cmd.Must(cmd.AddCommand("wait", func(_ cmd.Arguments) error {
		wait = true
		return nil
	}))
}

// AddExecutor appends a command dispatcher. They are tried in registration
// order until one claims the line.
func AddExecutor(e Efunc) {
	executors = append(executors, e)
}

func executeLine(line string) error {
	a := cmd.Parse(line)
	if len(a.Args()) == 0 {
		return nil
	}
	for _, e := range executors {
		if ok, err := e(a); err != nil {
			return err
		} else if ok {
			return nil
		}
	}
	conlog.Printf("Unknown command \"%s\"\n", a.Argv(0).String())
	return nil
}

// Execute runs buffered commands until the buffer is empty or a wait command
// pushes the remainder to the next frame.
func Execute() error {
	for len(buf) != 0 {
		i := 0
		quote := false
	LineLoop:
		for i = 0; i < len(buf); i++ {
			switch buf[i] {
			case '"':
				quote = !quote
				continue LineLoop
			case ';':
				if quote {
					continue LineLoop
				}
				break LineLoop
			case '\n':
				break LineLoop
			}
		}
		// do not put ';' or '\n' in line
		line := buf[:i]
		// but remove this char as well
		if i < len(buf) {
			i++
		}
		buf = buf[i:]
		if err := executeLine(line); err != nil {
			return err
		}
		if wait {
			// wait for the next frame to continue executing
			wait = false
			return nil
		}
	}
	return nil
}

func AddText(text string) {
	buf = buf + text
}

func InsertText(text string) {
	buf = text + "\n" + buf
}
