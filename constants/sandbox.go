package constants

// World Tuning (float64, converted to Q32.32 at world construction)
const (
	// Gravity is vertical acceleration in units/s^2 (negative = down)
	Gravity = -9.81

	// DefaultRestitution is the bounciness applied to spawned bodies
	DefaultRestitution = 0.7

	// GroundY is the ground plane height; bodies rest with their ground
	// clearance above it
	GroundY = 0.0

	// Horizontal reflecting bounds keep bodies inside the viewable volume
	BoundsX = 8.0
	BoundsZ = 10.0

	// CameraZ offsets the simulation volume in front of the camera
	CameraZ = 14.0

	// FocalLength drives the perspective projection
	FocalLength = 14.0
)

// Spawning
const (
	// SpawnHeight is the Y coordinate new bodies drop from
	SpawnHeight = 4.0

	// SpawnExtent is the random horizontal offset range (±)
	SpawnExtent = 5.0

	// RestVelocityCutoff zeroes residual bounce velocity near the ground
	RestVelocityCutoff = 0.05
)
