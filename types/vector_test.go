package types

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	v1 := XYZ(1, 2, 3)
	v2 := XYZ(4, -5, 6)

	if exp, got := XYZ(5, -3, 9), v1.Add(v2); got != exp {
		t.Fatalf("expected sum %v; got %v", exp, got)
	}
	if exp, got := XYZ(-3, 7, -3), v1.Sub(v2); got != exp {
		t.Fatalf("expected difference %v; got %v", exp, got)
	}
	if exp, got := XYZ(2, 4, 6), v1.Mul(2); got != exp {
		t.Fatalf("expected scaled %v; got %v", exp, got)
	}
	if exp, got := XYZ(-1, -2, -3), v1.Neg(); got != exp {
		t.Fatalf("expected negated %v; got %v", exp, got)
	}
	if exp, got := float32(12), v1.Dot(v2); got != exp {
		t.Fatalf("expected dot %f; got %f", exp, got)
	}
}

func TestVec3LenAndDistance(t *testing.T) {
	v := XYZ(3, 4, 0)

	if v.Len() != 5 {
		t.Fatalf("expected length 5; got %f", v.Len())
	}
	if v.LenSq() != 25 {
		t.Fatalf("expected squared length 25; got %f", v.LenSq())
	}
	if d := XYZ(1, 1, 1).Distance(XYZ(1, 1, 2)); d != 1 {
		t.Fatalf("expected distance 1; got %f", d)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := XYZ(10, 0, 0).Normalize()
	if n != XYZ(1, 0, 0) {
		t.Fatalf("expected unit X; got %v", n)
	}

	n = XYZ(1, 2, 3).Normalize()
	if delta := math.Abs(float64(n.Len()) - 1.0); delta > 1e-6 {
		t.Fatalf("expected unit length; got %f", n.Len())
	}

	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Fatalf("expected the zero vector to normalize to itself; got %v", z)
	}
}

func TestVec3Cross(t *testing.T) {
	type spec struct {
		v1       Vec3
		v2       Vec3
		expCross Vec3
	}
	specs := []spec{
		{XYZ(1, 0, 0), XYZ(0, 1, 0), XYZ(0, 0, 1)},
		{XYZ(0, 1, 0), XYZ(1, 0, 0), XYZ(0, 0, -1)},
		{XYZ(0, 0, 1), XYZ(1, 0, 0), XYZ(0, 1, 0)},
		{XYZ(2, 0, 0), XYZ(4, 0, 0), XYZ(0, 0, 0)},
	}

	for index, s := range specs {
		if got := s.v1.Cross(s.v2); got != s.expCross {
			t.Fatalf("[spec %d] expected cross %v; got %v", index, s.expCross, got)
		}
	}
}

func TestVec2Ops(t *testing.T) {
	v1 := XY(3, 4)
	v2 := XY(1, 1)

	if exp, got := XY(2, 3), v1.Sub(v2); got != exp {
		t.Fatalf("expected difference %v; got %v", exp, got)
	}
	if exp, got := float32(7), v1.Dot(v2); got != exp {
		t.Fatalf("expected dot %f; got %f", exp, got)
	}
	if v1.Len() != 5 {
		t.Fatalf("expected length 5; got %f", v1.Len())
	}
}
