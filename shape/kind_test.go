package shape

import (
	"testing"

	"github.com/lixenwraith/shapebox/vmath"
)

func TestAllOrder(t *testing.T) {
	kinds := All()
	want := []Kind{Ball, Cube, Capsule, Cylinder, Cone}

	if len(kinds) != len(want) {
		t.Fatalf("Expected %d kinds, got %d", len(want), len(kinds))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("Position %d: expected %v, got %v", i, want[i], kinds[i])
		}
	}
}

func TestLabels(t *testing.T) {
	cases := map[Kind]string{
		Ball:     "Ball",
		Cube:     "Cube",
		Capsule:  "Capsule",
		Cylinder: "Cylinder",
		Cone:     "Cone",
	}
	for k, want := range cases {
		if k.Label() != want {
			t.Errorf("Expected label %q, got %q", want, k.Label())
		}
	}

	if Kind(99).Label() != "Unknown" {
		t.Errorf("Expected Unknown for out-of-range kind")
	}
}

func TestColliderDimensions(t *testing.T) {
	if got := vmath.ToFloat(Ball.Collider().Radius); got != 0.5 {
		t.Errorf("Ball radius: expected 0.5, got %v", got)
	}

	cube := Cube.Collider().HalfExtents
	if vmath.ToFloat(cube.X) != 0.5 || vmath.ToFloat(cube.Y) != 0.5 || vmath.ToFloat(cube.Z) != 0.5 {
		t.Errorf("Cube half extents: expected 0.5^3, got %+v", cube)
	}

	capsule := Capsule.Collider()
	if vmath.ToFloat(capsule.Radius) != 0.3 || vmath.ToFloat(capsule.HalfHeight) != 1.0 {
		t.Errorf("Capsule: expected r=0.3 hh=1.0, got r=%v hh=%v",
			vmath.ToFloat(capsule.Radius), vmath.ToFloat(capsule.HalfHeight))
	}

	for _, k := range []Kind{Cylinder, Cone} {
		p := k.Collider()
		if vmath.ToFloat(p.Radius) != 0.5 || vmath.ToFloat(p.HalfHeight) != 1.0 {
			t.Errorf("%v: expected r=0.5 hh=1.0, got r=%v hh=%v",
				k, vmath.ToFloat(p.Radius), vmath.ToFloat(p.HalfHeight))
		}
	}
}

func TestMeshMatchesCollider(t *testing.T) {
	for _, k := range All() {
		if k.Mesh() != k.Collider() {
			t.Errorf("%v: mesh and collider parameters diverge", k)
		}
	}
}

func TestGroundClearance(t *testing.T) {
	cases := map[Kind]float64{
		Ball:     0.5,
		Cube:     0.5,
		Capsule:  1.3,
		Cylinder: 1.0,
		Cone:     1.0,
	}
	for k, want := range cases {
		got := vmath.ToFloat(k.GroundClearance())
		if got != want {
			t.Errorf("%v clearance: expected %v, got %v", k, want, got)
		}
	}
}

func TestBoundingRadiusPositive(t *testing.T) {
	for _, k := range All() {
		if k.BoundingRadius() <= 0 {
			t.Errorf("%v: bounding radius must be positive", k)
		}
	}
}
