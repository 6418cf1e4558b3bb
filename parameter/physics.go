package parameter

// Verlet integrator
const (
	// Gravity is downward acceleration in world units per second squared, +y points down
	Gravity = 100.0

	// ConstraintIterations is the number of relaxation passes per tick
	ConstraintIterations = 5
)
