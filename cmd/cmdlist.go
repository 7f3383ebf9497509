// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"gostride/conlog"
)

func init() {
	Must(AddCommand("cmdlist", cmdList))
}

func cmdList(_ Arguments) error {
	cmds := List()
	for _, c := range cmds {
		conlog.SafePrintf("  %s\n", c)
	}
	conlog.SafePrintf("%v commands\n", len(cmds))
	return nil
}
