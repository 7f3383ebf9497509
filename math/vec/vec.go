// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"github.com/chewxy/math32"
)

// Vec3 is a Y-up world-space vector. X and Z span the ground plane,
// Y is vertical.
type Vec3 struct {
	X, Y, Z float32
}

// Length returns the length of the vector
func (v *Vec3) Length() float32 {
	return math32.Sqrt(Dot(*v, *v))
}

// HorizontalLengthSq returns the squared length of the ground-plane part
// of the vector. Used for speed threshold checks without a sqrt.
func (v *Vec3) HorizontalLengthSq() float32 {
	return v.X*v.X + v.Z*v.Z
}

// Add returns a + b
func Add(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X + b.X,
		Y: a.Y + b.Y,
		Z: a.Z + b.Z,
	}
}

// Sub returns a - b
func Sub(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X - b.X,
		Y: a.Y - b.Y,
		Z: a.Z - b.Z,
	}
}

// Scale returns the vector multiplied by the skalar s
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{
		X: v.X * s,
		Y: v.Y * s,
		Z: v.Z * s,
	}
}

// Dot returns a dot b
func Dot(a Vec3, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns a cross b
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// YawVectors returns the forward and right ground-plane basis for a facing
// given in degrees. A first-person walker has no roll or pitch in its
// movement basis, so both vectors have Y == 0.
func YawVectors(yaw float32) (forward, right Vec3) {
	const deg = math32.Pi * 2 / 360
	sy, cy := math32.Sincos(yaw * deg)

	forward = Vec3{X: cy, Z: sy}
	right = Cross(Vec3{Y: 1}, forward)
	return
}
