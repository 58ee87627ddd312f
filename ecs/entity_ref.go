package ecs

// EntityRef is a stable handle to an entity. It stays safe to hold across
// frames: once the entity is deleted its generation no longer matches and
// the ref resolves to nothing, even if the slot has been reused.
type EntityRef struct {
	id      EntityId
	storage *Storage
}

// CreateEntityRef returns a stable reference to the given entity.
func (s *Storage) CreateEntityRef(id EntityId) EntityRef {
	return EntityRef{id: id, storage: s}
}

// Id returns the referenced entity id.
func (r EntityRef) Id() EntityId {
	return r.id
}

// Alive reports whether the referenced entity still exists.
func (r EntityRef) Alive() bool {
	return r.storage != nil && r.storage.Alive(r.id)
}

// RefComponent resolves a component through a ref, or nil if the entity is
// gone or lacks the component.
func RefComponent[T any](r EntityRef) *T {
	if r.storage == nil {
		return nil
	}
	return ReadComponent[T](r.storage, r.id)
}
