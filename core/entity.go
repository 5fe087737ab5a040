package core

// Entity is a unique scene object identifier, 0 is reserved as invalid
type Entity uint64

// Usable is the capability every interactive prop exposes to the interaction system
// Use never fails observably; at worst it is a no-op
type Usable interface {
	Use()
}
