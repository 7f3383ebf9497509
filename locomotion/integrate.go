// SPDX-License-Identifier: GPL-2.0-or-later

package locomotion

import (
	"github.com/chewxy/math32"

	"gostride/cvars"
	"gostride/input"
	"gostride/math/vec"
)

// jumpImpulse is the takeoff speed whose ballistic apex equals the
// configured jump height under the configured gravity.
func jumpImpulse(gravity, jumpHeight float32) float32 {
	return math32.Sqrt(2 * math32.Abs(gravity) * jumpHeight)
}

// integrateVelocity composes this step's velocity and imposes it on the
// body, overwriting whatever the solver computed.
//
// A granted jump clears the grounded flag before the horizontal speed is
// selected, so the takeoff step is already treated as airborne. The takeoff
// step gets the pure impulse, gravity only accumulates from the next step.
func (c *Controller) integrateVelocity(in input.Intent, dt float32) {
	gravity := cvars.StrideGravity.Value()

	if in.Jump && c.grounded {
		c.verticalVel = jumpImpulse(gravity, cvars.StrideJumpHeight.Value())
		c.grounded = false
	} else if !c.grounded {
		c.verticalVel += gravity * dt
	} else {
		c.verticalVel = 0
	}

	speed := c.modeSpeed(in)
	forward, right := vec.YawVectors(c.yaw)
	horizontal := vec.Add(
		forward.Scale(in.ForwardMove*speed),
		right.Scale(in.SideMove*speed),
	)

	c.body.SetVelocity(vec.Vec3{
		X: horizontal.X,
		Y: c.verticalVel,
		Z: horizontal.Z,
	})

	if c.sink != nil {
		c.sink.SetGround(c.grounded)
	}
}
