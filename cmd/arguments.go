// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"log"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type QArg struct {
	a string
}

func (a QArg) String() string {
	return a.a
}

func (a QArg) Int() int {
	r, err := strconv.ParseInt(a.a, 10, 0)
	if err != nil {
		return 0
	}
	return int(r)
}

func (a QArg) Float32() float32 {
	r, err := strconv.ParseFloat(a.a, 32)
	if err != nil {
		return 0
	}
	return float32(r)
}

func (a QArg) Bool() bool {
	switch a.a {
	case "1", "t", "T", "true", "TRUE", "True", "On", "ON", "on":
		return true
	default:
		return false
	}
}

type Arguments struct {
	// each arg on its own
	args []QArg
	// the trimmed input line
	full string
}

func (c *Arguments) Argv(i int) QArg {
	if i < 0 || i >= len(c.args) {
		log.Printf("Got Argv out of bounds %v, %v", i, len(c.args))
		return QArg{""}
	}
	return c.args[i]
}

func (c *Arguments) Full() string {
	return c.full
}

func (c *Arguments) Args() []QArg {
	return c.args
}

// ArgumentString returns everything after the command name with surrounding
// quotes removed.
func (c *Arguments) ArgumentString() string {
	if len(c.args) < 2 {
		return ""
	}
	r := strings.TrimPrefix(c.full, c.args[0].String())
	r = strings.TrimLeftFunc(r, unicode.IsSpace)
	if len(r) > 1 && r[0] == '"' {
		r = strings.Trim(r, "\"\t\n\v\f\r ")
	}
	return r
}

// Parse splits a single config/console line into arguments. Quoted strings
// stay one argument, "//" starts a comment which runs to the end of line.
func Parse(s string) (args Arguments) {
	args.full = strings.TrimFunc(s, unicode.IsSpace)
	args.args = []QArg{}

	in := args.full
	for len(in) > 0 {
		r, w := utf8.DecodeRuneInString(in)
		switch {
		case r == '\n' || r == '\r':
			return
		case r == ' ' || r == '\t':
			in = in[w:]
		case r == '"':
			end := strings.IndexByte(in[w:], '"')
			if end < 0 {
				// unterminated string, take the rest
				args.args = append(args.args, QArg{in[w:]})
				return
			}
			args.args = append(args.args, QArg{in[w : w+end]})
			in = in[w+end+1:]
		case strings.HasPrefix(in, "//"):
			return
		default:
			end := strings.IndexFunc(in, func(r rune) bool { return r <= ' ' })
			if end < 0 {
				end = len(in)
			}
			args.args = append(args.args, QArg{in[:end]})
			in = in[end:]
		}
	}
	return
}
