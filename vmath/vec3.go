package vmath

// Vec3 is a 3D vector in Q32.32 fixed-point
type Vec3 struct {
	X, Y, Z int64
}

// V3FromFloat builds a Vec3 from float64 components
func V3FromFloat(x, y, z float64) Vec3 {
	return Vec3{FromFloat(x), FromFloat(y), FromFloat(z)}
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s int64) Vec3 {
	return Vec3{Mul(v.X, s), Mul(v.Y, s), Mul(v.Z, s)}
}

func V3Dot(a, b Vec3) int64 {
	return Mul(a.X, b.X) + Mul(a.Y, b.Y) + Mul(a.Z, b.Z)
}

func V3MagSq(v Vec3) int64 {
	return Mul(v.X, v.X) + Mul(v.Y, v.Y) + Mul(v.Z, v.Z)
}

func V3Mag(v Vec3) int64 {
	return Sqrt(V3MagSq(v))
}

// V3Normalize returns the unit vector, zero vector for zero input
func V3Normalize(v Vec3) Vec3 {
	m := V3Mag(v)
	if m == 0 {
		return Vec3{}
	}
	return Vec3{Div(v.X, m), Div(v.Y, m), Div(v.Z, m)}
}
