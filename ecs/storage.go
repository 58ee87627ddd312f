package ecs

import (
	"reflect"
	"unsafe"
)

// Storage is the main ECS storage interface. It owns the entity allocator,
// the per-type component stores, and the singleton components.
type Storage struct {
	registry *ComponentRegistry
	stores   map[reflect.Type]componentStore

	generations []uint32
	alive       []bool
	freeSlots   []uint32

	singletons map[reflect.Type]*singletonEntry
}

type singletonEntry struct {
	typ     reflect.Type
	dataPtr unsafe.Pointer
}

// NewStorage creates a new ECS storage system with the given component registry.
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		stores:     make(map[reflect.Type]componentStore),
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// Spawn creates a new entity with the provided components.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	slot := s.allocateSlot()
	for _, comp := range components {
		s.storeFor(componentTypeOf(comp)).add(slot, comp)
	}
	return NewEntityId(slot, s.generations[slot])
}

// Delete removes all data related to the entity ID. Stale ids are ignored.
func (s *Storage) Delete(id EntityId) {
	if !s.Alive(id) {
		return
	}

	slot := id.Slot()
	for _, store := range s.stores {
		store.remove(slot)
	}

	s.generations[slot]++
	s.alive[slot] = false
	s.freeSlots = append(s.freeSlots, slot)
}

// Alive reports whether the id names a live entity in its current generation.
func (s *Storage) Alive(id EntityId) bool {
	slot := id.Slot()
	if int(slot) >= len(s.generations) {
		return false
	}
	return s.alive[slot] && s.generations[slot] == id.Generation()
}

// AddComponent attaches a component to a live entity, overwriting any
// existing component of the same type. Returns false for stale ids.
func (s *Storage) AddComponent(id EntityId, component any) bool {
	if !s.Alive(id) {
		return false
	}
	return s.storeFor(componentTypeOf(component)).add(id.Slot(), component)
}

// RemoveComponent detaches a component type from a live entity.
// Returns false if the entity is stale or does not carry the component.
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) bool {
	if !s.Alive(id) {
		return false
	}
	store, ok := s.stores[compType]
	if !ok {
		return false
	}
	return store.remove(id.Slot())
}

// GetComponent returns the component (as a pointer, wrapped in any) for the
// given entity ID and component type, or nil.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	if !s.Alive(id) {
		return nil
	}
	store, ok := s.stores[compType]
	if !ok {
		return nil
	}
	return store.get(id.Slot())
}

// HasComponent checks if an entity has a specific component type.
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	if !s.Alive(id) {
		return false
	}
	store, ok := s.stores[compType]
	if !ok {
		return false
	}
	return store.has(id.Slot())
}

// EntityCount returns the number of live entities.
func (s *Storage) EntityCount() int {
	return len(s.generations) - len(s.freeSlots)
}

// AddSingleton stores a single component instance that is not associated
// with any entity, replacing any previous instance of the same type.
func (s *Storage) AddSingleton(component any) {
	typ := componentTypeOf(component)

	rv := reflect.ValueOf(component)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	holder := reflect.New(typ)
	holder.Elem().Set(rv)
	s.singletons[typ] = &singletonEntry{
		typ:     typ,
		dataPtr: holder.UnsafePointer(),
	}
}

// ReadSingleton fills target, which must be a non-nil **T, with a pointer to
// the stored singleton of type T. Returns false if no such singleton exists.
func (s *Storage) ReadSingleton(target any) bool {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a non-nil pointer to a pointer")
	}

	entry := s.getSingletonEntry(rv.Elem().Type().Elem())
	if entry == nil {
		return false
	}

	rv.Elem().Set(reflect.NewAt(entry.typ, entry.dataPtr))
	return true
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

// storeFor returns the store for a component type, creating it on first use.
// Panics if the type was never registered.
func (s *Storage) storeFor(t reflect.Type) componentStore {
	store, ok := s.stores[t]
	if !ok {
		factory := s.registry.getFactory(t)
		if factory == nil {
			panic("component type " + t.String() + " not registered")
		}
		store = factory()
		s.stores[t] = store
	}
	return store
}

// storeIfExists returns the store for a component type without creating it.
func (s *Storage) storeIfExists(t reflect.Type) componentStore {
	return s.stores[t]
}

func (s *Storage) allocateSlot() uint32 {
	if n := len(s.freeSlots); n > 0 {
		slot := s.freeSlots[n-1]
		s.freeSlots = s.freeSlots[:n-1]
		s.alive[slot] = true
		return slot
	}

	slot := uint32(len(s.generations))
	s.generations = append(s.generations, 1)
	s.alive = append(s.alive, true)
	return slot
}

// componentTypeOf resolves the concrete component type, dereferencing one
// level of pointer so both T and *T values describe the same store.
func componentTypeOf(component any) reflect.Type {
	t := reflect.TypeOf(component)
	if t == nil {
		panic("component must not be nil")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() == reflect.Ptr || t.Kind() == reflect.Map ||
		t.Kind() == reflect.Chan || t.Kind() == reflect.Func {
		panic("components cannot be pointers, maps, channels, or functions")
	}
	return t
}

// ComponentReader is the read-only surface Views and helpers need.
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's component of type T, or nil.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	if c, ok := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T); ok {
		return c
	}
	return nil
}
