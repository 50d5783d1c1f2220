package ecs

// EntityID identifies an entity within one World.
type EntityID uint64

// NilEntity is the zero value; no valid entity has this ID.
const NilEntity EntityID = 0

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct attached to an entity.
// Mutable components (inventories) are stored as pointers so systems can
// change them in place without writing them back.
type Component interface {
	Type() ComponentType
}
