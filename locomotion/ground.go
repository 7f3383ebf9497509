// SPDX-License-Identifier: GPL-2.0-or-later

package locomotion

import (
	"gostride/cvars"
)

// senseGround recomputes the grounded flag. It is reset to false at the top
// of every fixed step, a stale true value never carries over.
func (c *Controller) senseGround() {
	c.grounded = false

	origin := c.collider.Center()
	radius := c.collider.HorizontalExtent() - cvars.StrideProbeShrink.Value()
	// the swept sphere ends flush with the feet plane, a longer cast would
	// re-grab the floor on the step right after takeoff
	dist := c.collider.VerticalExtent() - radius
	if dist < 0 {
		dist = 0
	}

	n := c.world.SphereCastDown(origin, radius, dist, c.contacts[:])
	for _, hit := range c.contacts[:n] {
		if hit != nil && hit != c.collider {
			c.grounded = true
			break
		}
	}
	clear(c.contacts[:])
}
