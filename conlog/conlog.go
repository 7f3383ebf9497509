// SPDX-License-Identifier: GPL-2.0-or-later

// package conlog is the console print indirection. Subsystems print through
// it without knowing where console output ends up.
package conlog

import (
	"log"
)

var (
	p  func(string, ...interface{})
	sp func(string, ...interface{})
)

func SetPrintf(f func(string, ...interface{})) {
	p = f
}

func SetSafePrintf(f func(string, ...interface{})) {
	sp = f
}

func Printf(format string, v ...interface{}) {
	if p == nil {
		log.Printf(format, v...)
		return
	}
	p(format, v...)
}

// SafePrintf is for messages which must not be lost even before the console
// sink is installed.
func SafePrintf(format string, v ...interface{}) {
	if sp == nil {
		log.Printf(format, v...)
		return
	}
	sp(format, v...)
}
