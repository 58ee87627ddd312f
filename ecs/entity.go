package ecs

// EntityId encodes both the storage slot (lower 32 bits) and the slot's
// generation (upper 32 bits). Deleting an entity bumps its slot generation,
// so ids held across frames go stale instead of aliasing a reused slot.
type EntityId uint64

// NewEntityId creates an EntityId from a slot and a generation.
func NewEntityId(slot uint32, generation uint32) EntityId {
	return EntityId(uint64(generation)<<32 | uint64(slot))
}

// Slot extracts the storage slot from the entity ID.
func (e EntityId) Slot() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// Generation extracts the generation from the entity ID.
func (e EntityId) Generation() uint32 {
	return uint32(e >> 32)
}

// Valid reports whether the id could name an entity. Generations start at 1,
// so the zero EntityId is never handed out and doubles as a null handle.
func (e EntityId) Valid() bool {
	return e.Generation() != 0
}
