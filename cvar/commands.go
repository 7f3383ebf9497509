// SPDX-License-Identifier: GPL-2.0-or-later

package cvar

import (
	"log"

	"gostride/cmd"
	"gostride/conlog"
)

func init() {
	cmd.Must(cmd.AddCommand("cvarlist", list))
	cmd.Must(cmd.AddCommand("inc", inc))
	cmd.Must(cmd.AddCommand("reset", reset))
	cmd.Must(cmd.AddCommand("resetall", resetAll))
	cmd.Must(cmd.AddCommand("set", set))
	cmd.Must(cmd.AddCommand("toggle", toggle))
}

func set(a cmd.Arguments) error {
	args := a.Args()[1:]
	switch {
	case len(args) >= 2:
		if cmd.Exists(args[0].String()) {
			conlog.Printf("conflict with command\n")
			return nil
		}
		if cv, ok := cvarByName[args[0].String()]; ok {
			cv.SetByString(args[1].String())
		} else {
			cv := create(args[0].String(), args[1].String())
			cv.user = true
		}
	default:
		conlog.Printf("set <cvar> <value>\n")
	}
	return nil
}

func toggle(a cmd.Arguments) error {
	args := a.Args()[1:]
	switch len(args) {
	case 1:
		arg := args[0].String()
		if cv, ok := Get(arg); ok {
			cv.Toggle()
		} else {
			conlog.Printf("toggle: variable %v not found\n", arg)
		}
	default:
		conlog.Printf("toggle <cvar> : toggle cvar\n")
	}
	return nil
}

func incr(n string, v float32) {
	if cv, ok := Get(n); ok {
		cv.SetValue(cv.Value() + v)
	} else {
		log.Printf("Cvar not found %v", n)
		conlog.Printf("inc: variable %v not found\n", n)
	}
}

func inc(a cmd.Arguments) error {
	args := a.Args()[1:]
	switch len(args) {
	case 1:
		incr(args[0].String(), 1)
	case 2:
		incr(args[0].String(), args[1].Float32())
	default:
		conlog.Printf("inc <cvar> [amount] : increment cvar\n")
	}
	return nil
}

func reset(a cmd.Arguments) error {
	args := a.Args()[1:]
	switch len(args) {
	case 1:
		arg := args[0].String()
		if cv, ok := Get(arg); ok {
			cv.Reset()
		} else {
			conlog.Printf("reset: variable %v not found\n", arg)
		}
	default:
		conlog.Printf("reset <cvar> : reset cvar to default\n")
	}
	return nil
}

func resetAll(_ cmd.Arguments) error {
	for _, cv := range All() {
		cv.Reset()
	}
	return nil
}

func list(_ cmd.Arguments) error {
	cvars := All()
	for _, v := range cvars {
		conlog.SafePrintf("%s%s %s \"%s\"\n",
			func() string {
				if v.Archive() {
					return "*"
				}
				return " "
			}(),
			func() string {
				if v.Notify() {
					return "s"
				}
				return " "
			}(),
			v.Name(),
			v.String())
	}
	conlog.SafePrintf("%v cvars\n", len(cvars))
	return nil
}
