package vmath

import (
	"math"
	"testing"
)

func TestFixedPointRoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 0.5, 4.0, -5.25, 100.125}
	for _, v := range values {
		got := ToFloat(FromFloat(v))
		if math.Abs(got-v) > 1e-6 {
			t.Errorf("Round trip of %v: got %v", v, got)
		}
	}
}

func TestMul(t *testing.T) {
	a := FromFloat(2.5)
	b := FromFloat(4.0)
	got := ToFloat(Mul(a, b))
	if math.Abs(got-10.0) > 1e-6 {
		t.Errorf("Expected 10.0, got %v", got)
	}

	// Sign handling
	got = ToFloat(Mul(FromFloat(-2.0), FromFloat(3.0)))
	if math.Abs(got+6.0) > 1e-6 {
		t.Errorf("Expected -6.0, got %v", got)
	}
}

func TestDiv(t *testing.T) {
	got := ToFloat(Div(FromFloat(10.0), FromFloat(4.0)))
	if math.Abs(got-2.5) > 1e-6 {
		t.Errorf("Expected 2.5, got %v", got)
	}

	if Div(Scale, 0) != 0 {
		t.Errorf("Expected 0 for division by zero")
	}
}

func TestSqrt(t *testing.T) {
	values := []float64{0.25, 1.0, 2.0, 16.0, 100.0}
	for _, v := range values {
		got := ToFloat(Sqrt(FromFloat(v)))
		want := math.Sqrt(v)
		if math.Abs(got-want) > 1e-4 {
			t.Errorf("Sqrt(%v): expected %v, got %v", v, want, got)
		}
	}

	if Sqrt(-Scale) != 0 {
		t.Errorf("Expected 0 for negative input")
	}
}

func TestVec3Ops(t *testing.T) {
	a := V3FromFloat(1, 2, 3)
	b := V3FromFloat(4, 5, 6)

	sum := V3Add(a, b)
	if ToFloat(sum.X) != 5 || ToFloat(sum.Y) != 7 || ToFloat(sum.Z) != 9 {
		t.Errorf("V3Add mismatch: %+v", sum)
	}

	diff := V3Sub(b, a)
	if ToFloat(diff.X) != 3 || ToFloat(diff.Y) != 3 || ToFloat(diff.Z) != 3 {
		t.Errorf("V3Sub mismatch: %+v", diff)
	}

	scaled := V3Scale(a, FromFloat(2.0))
	if ToFloat(scaled.Y) != 4 {
		t.Errorf("V3Scale mismatch: %+v", scaled)
	}

	dot := ToFloat(V3Dot(a, b))
	if math.Abs(dot-32.0) > 1e-4 {
		t.Errorf("Expected dot 32, got %v", dot)
	}
}

func TestV3Normalize(t *testing.T) {
	v := V3FromFloat(3, 0, 4)
	n := V3Normalize(v)
	mag := ToFloat(V3Mag(n))
	if math.Abs(mag-1.0) > 1e-3 {
		t.Errorf("Expected unit magnitude, got %v", mag)
	}

	zero := V3Normalize(Vec3{})
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector, got %+v", zero)
	}
}

func TestFastRandRange(t *testing.T) {
	r := NewFastRand(42)
	extent := FromFloat(5.0)
	for i := 0; i < 1000; i++ {
		v := r.Range(extent)
		if v < -extent || v > extent {
			t.Fatalf("Value %v outside [-5,5]", ToFloat(v))
		}
	}

	// Seed zero must still produce a valid sequence
	rz := NewFastRand(0)
	if rz.Next() == rz.Next() {
		t.Errorf("Expected advancing sequence from zero seed")
	}
}
