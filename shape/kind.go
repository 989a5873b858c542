package shape

import (
	"github.com/lixenwraith/shapebox/vmath"
)

// Kind identifies a spawnable body shape
// Declaration order is the selection cycling order
type Kind int

const (
	Ball Kind = iota
	Cube
	Capsule
	Cylinder
	Cone
	KindCount
)

// Params is the geometry parameter table entry for a Kind
// Only the fields relevant to the kind are meaningful:
// Ball uses Radius; Cube uses HalfExtents; Capsule/Cylinder/Cone use
// Radius + HalfHeight. All values Q32.32
type Params struct {
	Radius      int64
	HalfHeight  int64
	HalfExtents vmath.Vec3
}

var labels = [KindCount]string{
	"Ball",
	"Cube",
	"Capsule",
	"Cylinder",
	"Cone",
}

// Collider and mesh share one dimension table. The shapes are small
// primitives; keeping visual and collision geometry identical avoids
// tunneling-looking contacts at terminal resolution
var params = [KindCount]Params{
	Ball:     {Radius: vmath.FromFloat(0.5)},
	Cube:     {HalfExtents: vmath.V3FromFloat(0.5, 0.5, 0.5)},
	Capsule:  {Radius: vmath.FromFloat(0.3), HalfHeight: vmath.FromFloat(1.0)},
	Cylinder: {Radius: vmath.FromFloat(0.5), HalfHeight: vmath.FromFloat(1.0)},
	Cone:     {Radius: vmath.FromFloat(0.5), HalfHeight: vmath.FromFloat(1.0)},
}

// All returns every kind in fixed cycling order
func All() []Kind {
	return []Kind{Ball, Cube, Capsule, Cylinder, Cone}
}

// Label returns the display name
func (k Kind) Label() string {
	if k < 0 || k >= KindCount {
		return "Unknown"
	}
	return labels[k]
}

func (k Kind) String() string { return k.Label() }

// Collider returns the collision geometry parameters
func (k Kind) Collider() Params {
	if k < 0 || k >= KindCount {
		return Params{}
	}
	return params[k]
}

// Mesh returns the visual geometry parameters (same table as Collider)
func (k Kind) Mesh() Params {
	return k.Collider()
}

// BoundingRadius returns the enclosing sphere radius used for pairwise
// collision between bodies of any kind
func (k Kind) BoundingRadius() int64 {
	p := k.Collider()
	switch k {
	case Ball:
		return p.Radius
	case Cube:
		// Half diagonal of the box
		return vmath.V3Mag(p.HalfExtents)
	case Capsule:
		return p.HalfHeight + p.Radius
	case Cylinder, Cone:
		return vmath.Sqrt(vmath.Mul(p.HalfHeight, p.HalfHeight) + vmath.Mul(p.Radius, p.Radius))
	default:
		return 0
	}
}

// GroundClearance returns the vertical distance from body center to its
// lowest point, used for ground plane contact
func (k Kind) GroundClearance() int64 {
	p := k.Collider()
	switch k {
	case Ball:
		return p.Radius
	case Cube:
		return p.HalfExtents.Y
	case Capsule:
		return p.HalfHeight + p.Radius
	case Cylinder, Cone:
		return p.HalfHeight
	default:
		return 0
	}
}
