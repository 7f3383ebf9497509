// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"testing"

	"github.com/chewxy/math32"
)

var (
	NULL = Vec3{}
)

func TestLength(t *testing.T) {
	if NULL.Length() != 0 {
		t.Errorf("Null vector has not 0 length")
	}
	v := Vec3{2, 2, 1}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
	v = Vec3{2, 1, 2}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
	v = Vec3{1, 2, 2}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
}

func TestHorizontalLengthSq(t *testing.T) {
	v := Vec3{3, 100, 4}
	if v.HorizontalLengthSq() != 25 {
		t.Errorf("%v HorizontalLengthSq is not 25, vertical part must not count", v)
	}
}

func TestAdd(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Add(NULL, v)
	if v != got {
		t.Errorf("Adding a null vector changed the vector")
	}
	got = Add(v, NULL)
	if v != got {
		t.Errorf("Adding a null vector changed the vector")
	}
	got = Add(v, v)
	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("Add(%v,%v) = %v want %v", v, v, got, want)
	}
}

func TestSub(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Sub(v, NULL)
	if v != got {
		t.Errorf("Substracting a null vector changed the vector")
	}
	got = Sub(v, v)
	if got != NULL {
		t.Errorf("Sub(%v,%v) = %v want %v", v, v, got, NULL)
	}
	v2 := Vec3{9, 7, 5}
	got = Sub(v2, v)
	want := Vec3{8, 5, 2}
	if got != want {
		t.Errorf("Sub(%v,%v) = %v want %v", v2, v, got, want)
	}
}

func TestScale(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := v.Scale(2)
	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("%v.Scale(2) = %v want %v", v, got, want)
	}
}

func TestCross(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	z := Vec3{Z: 1}
	if got := Cross(x, y); got != z {
		t.Errorf("Cross(%v,%v) = %v want %v", x, y, got, z)
	}
	if got := Cross(y, x); got != z.Scale(-1) {
		t.Errorf("Cross(%v,%v) = %v want %v", y, x, got, z.Scale(-1))
	}
	if got := Cross(x, x); got != NULL {
		t.Errorf("Cross of parallel vectors is not null, got %v", got)
	}
}

func TestYawVectors(t *testing.T) {
	near := func(a, b Vec3) bool {
		const eps = 1e-6
		d := Sub(a, b)
		return math32.Abs(d.X) < eps && math32.Abs(d.Y) < eps && math32.Abs(d.Z) < eps
	}
	f, r := YawVectors(0)
	if !near(f, Vec3{X: 1}) || !near(r, Vec3{Z: -1}) {
		t.Errorf("YawVectors(0) = %v, %v", f, r)
	}
	f, r = YawVectors(90)
	if !near(f, Vec3{Z: 1}) || !near(r, Vec3{X: 1}) {
		t.Errorf("YawVectors(90) = %v, %v", f, r)
	}
	for _, yaw := range []float32{0, 30, 90, 123.5, 270} {
		f, r := YawVectors(yaw)
		if f.Y != 0 || r.Y != 0 {
			t.Errorf("YawVectors(%v) has a vertical part", yaw)
		}
		if d := Dot(f, r); math32.Abs(d) > 1e-6 {
			t.Errorf("YawVectors(%v) basis is not orthogonal, dot = %v", yaw, d)
		}
	}
}
