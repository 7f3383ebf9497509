// SPDX-License-Identifier: GPL-2.0-or-later

package phys

import (
	"testing"

	"gostride/math/vec"
)

func testWalker(t *testing.T) (*World, *Body, *Collider) {
	t.Helper()
	w := NewWorld()
	w.AddFloor(0, 100)
	b := &Body{}
	c := NewCollider(b, 0.5, 0.5, 2, 0)
	w.Add(c)
	return w, b, c
}

func TestColliderBounds(t *testing.T) {
	_, b, c := testWalker(t)
	min, max := c.Bounds()
	if min != (vec.Vec3{X: -0.5, Y: 0, Z: -0.5}) || max != (vec.Vec3{X: 0.5, Y: 2, Z: 0.5}) {
		t.Errorf("bounds = %v..%v", min, max)
	}
	b.Position = vec.Vec3{X: 3, Y: 1, Z: -2}
	min, max = c.Bounds()
	if min != (vec.Vec3{X: 2.5, Y: 1, Z: -2.5}) || max != (vec.Vec3{X: 3.5, Y: 3, Z: -1.5}) {
		t.Errorf("bounds after move = %v..%v", min, max)
	}
}

func TestSetHeightKeepsFeet(t *testing.T) {
	_, _, c := testWalker(t)
	c.SetHeight(1)
	min, max := c.Bounds()
	if min.Y != 0 {
		t.Errorf("feet moved to %v on height change", min.Y)
	}
	if max.Y != 1 {
		t.Errorf("top at %v, want 1", max.Y)
	}
	if c.Height() != 1 || c.VerticalExtent() != 0.5 {
		t.Errorf("Height = %v, VerticalExtent = %v", c.Height(), c.VerticalExtent())
	}
}

func TestSphereCastDownHitsFloor(t *testing.T) {
	w, _, c := testWalker(t)
	buf := make([]*Collider, 4)
	n := w.SphereCastDown(c.Center(), c.HorizontalExtent()-0.05, c.VerticalExtent(), buf)
	if n != 2 {
		t.Fatalf("hits = %d, want floor and self", n)
	}
}

func TestSphereCastDownMissesWhenAirborne(t *testing.T) {
	w, b, c := testWalker(t)
	b.Position.Y = 3
	buf := make([]*Collider, 4)
	n := w.SphereCastDown(c.Center(), c.HorizontalExtent()-0.05, c.VerticalExtent(), buf)
	for _, hit := range buf[:n] {
		if hit != c {
			t.Errorf("airborne probe hit %v", hit)
		}
	}
}

func TestSphereCastDownIgnoresTriggers(t *testing.T) {
	w, _, c := testWalker(t)
	w.Add(NewTrigger(vec.Vec3{Y: 0.5}, 5, 5, 5))
	buf := make([]*Collider, 8)
	n := w.SphereCastDown(c.Center(), c.HorizontalExtent()-0.05, c.VerticalExtent(), buf)
	for _, hit := range buf[:n] {
		if hit.Trigger() {
			t.Errorf("probe returned a trigger volume")
		}
	}
}

func TestSphereCastDownBufferCap(t *testing.T) {
	w, _, c := testWalker(t)
	for i := 0; i < 8; i++ {
		w.Add(NewStatic(vec.Vec3{Y: 0.5}, 1, 1, 1))
	}
	buf := make([]*Collider, 3)
	n := w.SphereCastDown(c.Center(), c.HorizontalExtent()-0.05, c.VerticalExtent(), buf)
	if n != 3 {
		t.Errorf("hits = %d, want buffer capacity 3", n)
	}
}

func TestStepClampsToFloor(t *testing.T) {
	w, b, _ := testWalker(t)
	b.Position.Y = 0.05
	b.SetVelocity(vec.Vec3{X: 1, Y: -10})
	w.Step(0.1)
	if b.Position.Y != 0 {
		t.Errorf("body fell through the floor to %v", b.Position.Y)
	}
	if b.Velocity().Y != 0 {
		t.Errorf("downward velocity kept after landing: %v", b.Velocity().Y)
	}
	if b.Position.X != 0.1 {
		t.Errorf("horizontal motion wrong: %v", b.Position.X)
	}
}
