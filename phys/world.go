// SPDX-License-Identifier: GPL-2.0-or-later

package phys

import (
	"github.com/chewxy/math32"

	"gostride/math/vec"
)

// World holds all colliders and integrates body positions. There is no
// contact resolution beyond keeping bodies from falling through the floor.
type World struct {
	colliders []*Collider
	bodies    []*Body
	floorY    float32
	hasFloor  bool
}

func NewWorld() *World {
	return &World{}
}

func (w *World) Add(c *Collider) {
	w.colliders = append(w.colliders, c)
	if b := c.Body(); b != nil {
		w.bodies = append(w.bodies, b)
	}
}

// AddFloor registers the walkable ground slab and remembers its top surface
// for body clamping.
func (w *World) AddFloor(topY, halfExtent float32) *Collider {
	c := NewGroundSlab(topY, halfExtent)
	w.Add(c)
	w.floorY = topY
	w.hasFloor = true
	return c
}

// Step advances all bodies by their current velocity. A falling body stops
// at the floor surface, that is the entire extent of collision response on
// flat ground.
func (w *World) Step(dt float32) {
	for _, b := range w.bodies {
		b.Position = vec.Add(b.Position, b.velocity.Scale(dt))
		if w.hasFloor && b.Position.Y < w.floorY {
			b.Position.Y = w.floorY
			if b.velocity.Y < 0 {
				b.velocity.Y = 0
			}
		}
	}
}

// SphereCastDown sweeps a sphere of the given radius from origin straight
// down over dist and writes every hit collider into buf, in registration
// order, up to len(buf). Trigger volumes are skipped, solid hits are not.
// It returns the number of hits written.
func (w *World) SphereCastDown(origin vec.Vec3, radius, dist float32, buf []*Collider) int {
	n := 0
	for _, c := range w.colliders {
		if n == len(buf) {
			break
		}
		if c.trigger {
			continue
		}
		if sweepHits(origin, radius, dist, c) {
			buf[n] = c
			n++
		}
	}
	return n
}

// sweepHits tests a vertical downward sphere sweep against one box. The
// swept volume is a vertical capsule, so the test decomposes into the
// ground-plane distance to the box footprint and the vertical gap to the
// box Y range.
func sweepHits(origin vec.Vec3, radius, dist float32, c *Collider) bool {
	if radius <= 0 {
		return false
	}
	min, max := c.Bounds()

	dx := axisGap(origin.X, min.X, max.X)
	dz := axisGap(origin.Z, min.Z, max.Z)

	// the sphere center travels from origin.Y down to origin.Y-dist
	segMin := origin.Y - dist
	segMax := origin.Y
	dy := float32(0)
	if min.Y > segMax {
		dy = min.Y - segMax
	} else if segMin > max.Y {
		dy = segMin - max.Y
	}

	gap := vec.Vec3{X: dx, Y: dy, Z: dz}
	return vec.Dot(gap, gap) <= radius*radius
}

// axisGap is the distance from v to the interval [lo,hi], zero inside.
func axisGap(v, lo, hi float32) float32 {
	return math32.Max(0, math32.Max(lo-v, v-hi))
}
