package physics

import (
	"math"

	"github.com/lixenwraith/shapebox/vmath"
)

// ElasticCollision3D computes post-collision velocities in place
// Hybrid math: deltas in int64, impulse in float64, applied back once
// to minimize conversion overhead and drift
func ElasticCollision3D(
	posA, posB *vmath.Vec3,
	velA, velB *vmath.Vec3,
	massA, massB, restitution int64,
) bool {
	dx := float64(posB.X - posA.X)
	dy := float64(posB.Y - posA.Y)
	dz := float64(posB.Z - posA.Z)

	distSq := dx*dx + dy*dy + dz*dz
	if distSq == 0 {
		return false
	}

	dist := math.Sqrt(distSq)
	invDist := 1.0 / dist
	nx, ny, nz := dx*invDist, dy*invDist, dz*invDist

	relVx := float64(velA.X - velB.X)
	relVy := float64(velA.Y - velB.Y)
	relVz := float64(velA.Z - velB.Z)

	vn := relVx*nx + relVy*ny + relVz*nz
	if vn <= 0 {
		// Separating
		return false
	}

	invA := 1.0 / float64(massA)
	invB := 1.0 / float64(massB)
	invSum := invA + invB
	if invSum == 0 {
		return false
	}

	fRest := float64(restitution) / vmath.ScaleF
	j := (1.0 + fRest) * vn / invSum

	jInvA := j * invA
	jInvB := j * invB

	velA.X -= int64(jInvA * nx)
	velA.Y -= int64(jInvA * ny)
	velA.Z -= int64(jInvA * nz)
	velB.X += int64(jInvB * nx)
	velB.Y += int64(jInvB * ny)
	velB.Z += int64(jInvB * nz)

	return true
}

// SeparateOverlap3D pushes overlapping spheres apart in place,
// mass-weighted, with a small extra margin
func SeparateOverlap3D(posA, posB *vmath.Vec3, radiusA, radiusB, massA, massB int64) bool {
	delta := vmath.V3Sub(*posB, *posA)
	dist := vmath.V3Mag(delta)
	minDist := radiusA + radiusB

	if dist >= minDist || dist == 0 {
		return false
	}

	overlap := minDist - dist
	n := vmath.Vec3{
		X: vmath.Div(delta.X, dist),
		Y: vmath.Div(delta.Y, dist),
		Z: vmath.Div(delta.Z, dist),
	}

	totalMass := massA + massB
	if totalMass == 0 {
		return false
	}
	ratioA := vmath.Div(massB, totalMass)
	ratioB := vmath.Div(massA, totalMass)

	margin := int64(vmath.Scale / 16) // Small extra separation

	*posA = vmath.V3Sub(*posA, vmath.V3Scale(n, vmath.Mul(overlap+margin, ratioA)))
	*posB = vmath.V3Add(*posB, vmath.V3Scale(n, vmath.Mul(overlap+margin, ratioB)))

	return true
}

// ReflectAxis3D clamps a position component to [lo, hi] and reflects
// velocity with restitution on boundary contact
func ReflectAxis3D(pos, vel *int64, lo, hi, restitution int64) bool {
	if *pos < lo {
		*pos = lo
		if *vel < 0 {
			*vel = -vmath.Mul(*vel, restitution)
		}
		return true
	}
	if *pos > hi {
		*pos = hi
		if *vel > 0 {
			*vel = -vmath.Mul(*vel, restitution)
		}
		return true
	}
	return false
}

// ReflectFloor clamps a position component to floor and bounces with
// restitution. Velocities below restCutoff come to rest instead of
// bouncing forever at shrinking amplitudes
func ReflectFloor(pos, vel *int64, floor, restitution, restCutoff int64) bool {
	if *pos >= floor {
		return false
	}
	*pos = floor
	if *vel < 0 {
		bounced := -vmath.Mul(*vel, restitution)
		if bounced < restCutoff {
			bounced = 0
		}
		*vel = bounced
	}
	return true
}
