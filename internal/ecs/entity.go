package ecs

// EntityID uniquely identifies an entity in the world.
type EntityID uint64

// NilEntity is the zero value; no valid entity has this ID.
const NilEntity EntityID = 0

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}

// TagMask is a set of presence-only flags packed into one word per entity.
// Tags carry no data, so they live beside the component stores instead of
// inside them.
type TagMask uint32

// Has reports whether every bit of want is set in m.
func (m TagMask) Has(want TagMask) bool {
	return m&want == want
}
