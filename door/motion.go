package door

// Motion moves a door body between its closed and open placements
//
// Contract:
//   - Begin fixes the target for one transition; direction is +1 to open, -1 to close
//   - Step moves a fraction t in [0,1] of the remaining way toward the target
//   - Converged reports whether the body is within tolerance of the target
//   - Snap places the body exactly on the target
type Motion interface {
	Begin(direction int)
	Step(t float64)
	Converged() bool
	Snap()
}
