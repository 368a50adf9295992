package common

const (
	// Gravity is downward in screen coordinates (positive Y is down).
	Gravity = 500.0

	// SpaceIterations is the Chipmunk solver iteration count per step.
	SpaceIterations = 20

	// WallThickness is the collision radius of room boundary segments.
	WallThickness = 1.0

	WallFriction   = 0.8
	WallElasticity = 0.5

	// BallDensity and LinkDensity tune hook-chain sag: links are much
	// lighter than the ball they carry.
	BallDensity = 1.0
	LinkDensity = 0.1
	BoxDensity  = 0.5
)
