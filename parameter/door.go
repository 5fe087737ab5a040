package parameter

// Door Motion
const (
	// DoorSpeed scales the per-tick interpolation fraction
	DoorSpeed = 0.2

	// DoorEaseStart is the ease-in accumulator value at the start of every transition
	DoorEaseStart = 0.1

	// DoorRotatingAccel is ease growth per second for rotating doors (one unit per simulated second)
	DoorRotatingAccel = 1.0

	// DoorSlidingAccel is ease growth per second for sliding doors (0.1 per 20ms tick)
	DoorSlidingAccel = 5.0

	// DoorAngleTolerance is the convergence threshold for rotation in degrees
	DoorAngleTolerance = 0.1

	// DoorDistanceTolerance is the convergence threshold for translation in scene units
	DoorDistanceTolerance = 1e-3
)
