// SPDX-License-Identifier: GPL-2.0-or-later

package locomotion

import (
	"gostride/cvars"
	"gostride/input"
)

// StepSource is the looping audio collaborator of the narrator. Pausing
// keeps the playback position, assigning a clip restarts it.
type StepSource interface {
	Playing() bool
	Play()
	Pause()
	Clip() int
	SetClip(clip int)
}

// FootstepNarrator starts and pauses the footstep loop from the latest
// movement state. It runs on the visual frame, decoupled from the fixed
// physics step.
type FootstepNarrator struct {
	src      StepSource
	walkClip int
	runClip  int
}

func NewFootstepNarrator(src StepSource, walkClip, runClip int) *FootstepNarrator {
	return &FootstepNarrator{
		src:      src,
		walkClip: walkClip,
		runClip:  runClip,
	}
}

// Frame updates the footstep loop once per visual frame. Steps are audible
// only while grounded, moving and standing. The clip is reassigned only when
// it actually changes, assigning the same clip every frame would restart the
// loop audibly.
func (n *FootstepNarrator) Frame(c *Controller, in input.Intent) {
	if n == nil || n.src == nil {
		return
	}

	vel := c.Velocity()
	moving := vel.HorizontalLengthSq() > cvars.StrideStepCutoff.Value()

	if c.Grounded() && moving && !c.Crouching() {
		clip := n.walkClip
		if in.Run {
			clip = n.runClip
		}
		if n.src.Clip() != clip {
			n.src.SetClip(clip)
		}
		if !n.src.Playing() {
			n.src.Play()
		}
	} else if n.src.Playing() {
		n.src.Pause()
	}
}
