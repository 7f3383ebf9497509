// SPDX-License-Identifier: GPL-2.0-or-later

package locomotion

import (
	"gostride/cvars"
	"gostride/input"
)

// resolveCrouch runs the crouch sub-state machine. The collider height is
// written only on a transition, never redundantly.
func (c *Controller) resolveCrouch(in input.Intent) {
	if in.Crouch && !c.crouching {
		c.crouching = true
		c.collider.SetHeight(cvars.StrideCrouchHeight.Value())
	} else if !in.Crouch && c.crouching {
		c.crouching = false
		c.collider.SetHeight(cvars.StrideStandHeight.Value())
	}
}

// modeSpeed selects the horizontal speed for the current regime. Crouching
// suppresses the run intent entirely, and airborne movement is always damped
// relative to the same grounded mode: 0.75 of run speed after a running
// takeoff, half walk speed otherwise.
//
// Run memory records whether the last grounded step was a running step. It
// forms and clears only while grounded, pressing run mid-air never earns the
// run carry.
func (c *Controller) modeSpeed(in input.Intent) float32 {
	if in.Run && !c.crouching {
		if c.grounded {
			c.wasRunning = true
			return cvars.StrideRunSpeed.Value()
		}
		if c.wasRunning {
			return cvars.StrideRunSpeed.Value() * 0.75
		}
		return cvars.StrideWalkSpeed.Value() * 0.5
	}
	if c.crouching {
		return cvars.StrideCrouchSpeed.Value()
	}
	if c.grounded {
		c.wasRunning = false
		return cvars.StrideWalkSpeed.Value()
	}
	return cvars.StrideWalkSpeed.Value() * 0.5
}
