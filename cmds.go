// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"os"
	"path/filepath"

	"gostride/cbuf"
	"gostride/cmd"
	cmdl "gostride/commandline"
	"gostride/conlog"
)

// executed when no stride.cfg exists yet
const defaultCfg = `
unbindall
bind "w" "+forward"
bind "s" "+back"
bind "a" "+moveleft"
bind "d" "+moveright"
bind "left" "+left"
bind "right" "+right"
bind "space" "+jump"
bind "left shift" "+speed"
bind "left ctrl" "+crouch"
`

func echo(a cmd.Arguments) error {
	for _, arg := range a.Args()[1:] {
		conlog.Printf("%s ", arg.String())
	}
	conlog.Printf("\n")
	return nil
}

func execFile(a cmd.Arguments) error {
	args := a.Args()
	if len(args) != 2 {
		conlog.Printf("exec <filename> : execute a script file\n")
		return nil
	}
	name := args[1].String()
	b, err := os.ReadFile(filepath.Join(cmdl.BaseDirectory(), name))
	if err != nil {
		if name == "default.cfg" {
			conlog.Printf("execing %v\n", name)
			cbuf.InsertText(defaultCfg)
		} else {
			conlog.Printf("couldn't exec %v\n", name)
		}
		return nil
	}
	conlog.Printf("execing %v\n", name)
	cbuf.InsertText(string(b))
	return nil
}

func quit(_ cmd.Arguments) error {
	requestQuit()
	return nil
}

func init() {
	cmd.Must(cmd.AddCommand("echo", echo))
	cmd.Must(cmd.AddCommand("exec", execFile))
	cmd.Must(cmd.AddCommand("quit", quit))
}
