// SPDX-License-Identifier: GPL-2.0-or-later

// package locomotion turns player intent and ground contact into the
// velocity of a first-person walker. It owns all movement state, the
// host only schedules its fixed steps and frames.
package locomotion

import (
	"gostride/input"
	"gostride/math/vec"
	"gostride/phys"
)

// groundContacts is the probe buffer capacity. The buffer is reused every
// fixed step, the probe never allocates.
const groundContacts = 8

// StateSink receives the grounded flag so other systems (camera, animation)
// can read it without re-deriving it.
type StateSink interface {
	SetGround(bool)
}

// Controller drives one character. All state is owned here and mutated only
// on the host callbacks, there is no locking.
type Controller struct {
	world    *phys.World
	body     *phys.Body
	collider *phys.Collider
	sink     StateSink

	yaw float32

	grounded    bool
	crouching   bool
	wasRunning  bool
	verticalVel float32

	contacts [groundContacts]*phys.Collider
}

// NewController wires the controller to its physics collaborators. sink may
// be nil.
func NewController(world *phys.World, body *phys.Body, collider *phys.Collider, sink StateSink) *Controller {
	return &Controller{
		world:    world,
		body:     body,
		collider: collider,
		sink:     sink,
	}
}

func (c *Controller) Grounded() bool {
	return c.grounded
}

func (c *Controller) Crouching() bool {
	return c.crouching
}

func (c *Controller) VerticalVelocity() float32 {
	return c.verticalVel
}

func (c *Controller) Velocity() vec.Vec3 {
	return c.body.Velocity()
}

// Yaw is the facing in degrees. It only rotates the movement basis, the
// controller has no pitch or roll.
func (c *Controller) Yaw() float32 {
	return c.yaw
}

func (c *Controller) SetYaw(yaw float32) {
	c.yaw = yaw
}

// FixedStep runs one fixed simulation step. Ground sensing completes before
// any speed or velocity computation, and the jump impulse is applied before
// horizontal speed selection so the takeoff step already moves under
// airborne rules.
func (c *Controller) FixedStep(in input.Intent, dt float32) {
	c.senseGround()
	c.resolveCrouch(in)
	c.integrateVelocity(in, dt)
}
