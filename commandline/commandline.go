// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
)

var (
	conDebug bool
	noSound  bool
	window   bool

	height int
	width  int

	basedir string
)

func init() {
	flag.BoolVar(&conDebug, "condebug", false, "enable console debugging")
	flag.BoolVar(&noSound, "nosound", false, "Disable sound output")
	flag.BoolVar(&window, "window", false, "")
	flag.BoolVar(&window, "w", false, "")

	flag.IntVar(&width, "width", 640, "Window width")
	flag.IntVar(&height, "height", 480, "Window height")

	flag.StringVar(&basedir, "basedir", ".", "Directory containing sound/ and stride.cfg")
}

func ConsoleDebug() bool { return conDebug }
func Sound() bool        { return !noSound }
func Windowed() bool     { return window }
func Width() int         { return width }
func Height() int        { return height }
func BaseDirectory() string {
	return basedir
}
