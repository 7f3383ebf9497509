// SPDX-License-Identifier: GPL-2.0-or-later

// package phys is the minimal rigid body world the locomotion controller
// runs against. It stores bodies and box colliders and answers the downward
// probe query. It resolves no contacts, the controller fully owns the
// velocity it writes.
package phys

import (
	"gostride/math/vec"
)

// Body is a dynamic rigid body. The controller talks to it exclusively
// through its linear velocity.
type Body struct {
	Position vec.Vec3
	velocity vec.Vec3
}

func (b *Body) Velocity() vec.Vec3 {
	return b.velocity
}

// SetVelocity overwrites the linear velocity, discarding whatever the solver
// computed for this step.
func (b *Body) SetVelocity(v vec.Vec3) {
	b.velocity = v
}

// Collider is an axis aligned box. For a body-owned collider the feet stay
// planted when the height changes, only the top moves.
type Collider struct {
	body    *Body
	trigger bool

	center     vec.Vec3
	halfWidth  float32 // X
	halfDepth  float32 // Z
	height     float32 // full Y size
	feetOffset float32 // center.Y above the feet point
}

// NewCollider creates a box collider of the given full height standing with
// its feet at feetY.
func NewCollider(body *Body, halfWidth, halfDepth, height float32, feetY float32) *Collider {
	return &Collider{
		body:       body,
		halfWidth:  halfWidth,
		halfDepth:  halfDepth,
		height:     height,
		center:     vec.Vec3{Y: feetY + height/2},
		feetOffset: height / 2,
	}
}

// NewStatic creates an immobile box collider centered at center.
func NewStatic(center vec.Vec3, halfWidth, halfHeight, halfDepth float32) *Collider {
	return &Collider{
		center:    center,
		halfWidth: halfWidth,
		halfDepth: halfDepth,
		height:    halfHeight * 2,
	}
}

// NewGroundSlab creates the walkable floor, a thin static box with its top
// surface at topY.
func NewGroundSlab(topY, halfExtent float32) *Collider {
	const thickness = 0.5
	return NewStatic(vec.Vec3{Y: topY - thickness/2}, halfExtent, thickness/2, halfExtent)
}

// NewTrigger creates a non-solid volume. The ground probe ignores it.
func NewTrigger(center vec.Vec3, halfWidth, halfHeight, halfDepth float32) *Collider {
	c := NewStatic(center, halfWidth, halfHeight, halfDepth)
	c.trigger = true
	return c
}

func (c *Collider) Body() *Body {
	return c.body
}

func (c *Collider) Trigger() bool {
	return c.trigger
}

func (c *Collider) Height() float32 {
	return c.height
}

// SetHeight resizes the box vertically. A body-owned collider keeps its feet
// where they are, a static one resizes around its center.
func (c *Collider) SetHeight(h float32) {
	c.height = h
	if c.body != nil {
		c.feetOffset = h / 2
	}
}

func (c *Collider) SetCenter(p vec.Vec3) {
	c.center = p
}

// Center returns the world-space center of the collider bounds. A collider
// owned by a body follows the body position.
func (c *Collider) Center() vec.Vec3 {
	if c.body == nil {
		return c.center
	}
	p := c.body.Position
	p.Y += c.feetOffset
	return p
}

// Bounds returns the world-space min and max corners.
func (c *Collider) Bounds() (vec.Vec3, vec.Vec3) {
	center := c.Center()
	half := vec.Vec3{X: c.halfWidth, Y: c.height / 2, Z: c.halfDepth}
	return vec.Sub(center, half), vec.Add(center, half)
}

// HorizontalExtent is the smaller ground-plane half extent, the widest
// probe sphere that still fits inside the collider footprint.
func (c *Collider) HorizontalExtent() float32 {
	if c.halfWidth < c.halfDepth {
		return c.halfWidth
	}
	return c.halfDepth
}

// VerticalExtent is the half height of the collider bounds.
func (c *Collider) VerticalExtent() float32 {
	return c.height / 2
}
