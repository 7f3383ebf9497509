// SPDX-License-Identifier: GPL-2.0-or-later

// package input handles button event tracking
package input

import (
	"gostride/cmd"
)

type button struct {
	// key nums holding it down, can handle 2 keys with the same action
	holdingDown [2]int
	down        bool
	impulseDown bool
	impulseUp   bool
}

var (
	Forward   button
	Back      button
	MoveLeft  button
	MoveRight button
	Left      button
	Right     button
	Speed     button
	Crouch    button
	Jump      button
)

func (b button) Down() bool {
	return b.down
}

func (b *button) WentDown() bool {
	// return down + impulse down
	// reset impulse down
	r := b.down || b.impulseDown
	b.impulseDown = false
	return r
}

// Returns 0.25 if a button was pressed and released during the frame,
// 0.5 if it was pressed and held
// 0 if held then released, and
// 1 if held for the entire time
func (b button) GetImpulse() float32 {
	if b.impulseDown && b.impulseUp {
		if b.down {
			return 0.75
		}
		return 0.25
	}
	if !b.impulseDown && !b.impulseUp {
		if b.down {
			return 1
		}
		return 0
	}
	if b.impulseUp && !b.impulseDown {
		return 0
	}
	if b.impulseDown && !b.impulseUp {
		if b.down {
			return 0.5
		}
		return 0
	}
	return 0 // unreachable
}

func (b *button) ResetImpulse() {
	b.impulseDown = false
	b.impulseUp = false
}

func (b *button) ConsumeImpulse() float32 {
	i := b.GetImpulse()
	b.ResetImpulse()
	return i
}

func (b *button) upKey(k int) {
	if b.holdingDown[0] == k {
		b.holdingDown[0] = 0
	} else if b.holdingDown[1] == k {
		b.holdingDown[1] = 0
	} else {
		return
	}
	if b.holdingDown[0] != 0 || b.holdingDown[1] != 0 {
		// some other key is still holding it down
		return
	}
	if !b.down {
		return
	}
	b.down = false
	b.impulseUp = true
}

func (b *button) upCmd() cmd.Func {
	return func(a cmd.Arguments) error {
		k := a.Args()[1:]
		if len(k) == 0 {
			// typed manually
			b.holdingDown[0] = 0
			b.holdingDown[1] = 0
			b.down = false
			b.impulseDown = false
			b.impulseUp = true
		} else {
			b.upKey(k[0].Int())
		}
		return nil
	}
}

func (b *button) downKey(k int) {
	if b.holdingDown[0] == 0 {
		b.holdingDown[0] = k
	} else if b.holdingDown[1] == 0 {
		b.holdingDown[1] = k
	} else {
		// a third key down for this button
		return
	}
	if b.down {
		return
	}
	b.down = true
	b.impulseDown = true
}

func (b *button) downCmd() cmd.Func {
	return func(a cmd.Arguments) error {
		k := a.Args()[1:]
		if len(k) == 0 {
			// typed manually
			b.downKey(-1)
		} else {
			b.downKey(k[0].Int())
		}
		return nil
	}
}

// Commands registers the +action/-action pairs. Key events issue these
// commands and pass the key number as argument, no number means
// console/cfg input.
func Commands() error {
	for _, c := range []struct {
		name string
		b    *button
	}{
		{"forward", &Forward},
		{"back", &Back},
		{"moveleft", &MoveLeft},
		{"moveright", &MoveRight},
		{"left", &Left},
		{"right", &Right},
		{"speed", &Speed},
		{"crouch", &Crouch},
		{"jump", &Jump},
	} {
		if err := cmd.AddCommand("+"+c.name, c.b.downCmd()); err != nil {
			return err
		}
		if err := cmd.AddCommand("-"+c.name, c.b.upCmd()); err != nil {
			return err
		}
	}
	return nil
}
