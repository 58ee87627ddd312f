package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// iface mirrors the internal memory layout of an interface value. Component
// stores hand out components as `any` wrapping a *T; the data pointer of that
// interface is the *T itself, which lets views fill result structs without
// reflection in the hot path.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// View represents a query for entities with a specific combination of
// components. The type T must be a struct whose fields are pointers to
// component types, plus at most one embedded EntityId field which is filled
// with the matched entity's id.
//
// Named fields accept an `ecs` struct tag:
//
//	`ecs:"optional"` — the component may be missing; the field is nil then.
//	`ecs:"exclude"`  — entities carrying the component are skipped; the
//	                   field is always nil.
//
// Embedded pointer fields are always required.
type View[T any] struct {
	storage *Storage

	hasId    bool
	idOffset uintptr

	types       []reflect.Type
	optional    []bool
	exclude     []bool
	fieldOffset []uintptr
}

// NewView creates a new view for the given struct type.
func NewView[T any](storage *Storage) *View[T] {
	v := &View[T]{}
	v.Init(storage)
	return v
}

// Init initializes or re-initializes the View with a storage.
// Called by the Scheduler during system registration.
func (v *View[T]) Init(storage *Storage) {
	var zero T
	structType := reflect.TypeOf(zero)
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v.storage = storage
	v.hasId = false
	v.types = v.types[:0]
	v.optional = v.optional[:0]
	v.exclude = v.exclude[:0]
	v.fieldOffset = v.fieldOffset[:0]

	entityIdType := reflect.TypeFor[EntityId]()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			if v.hasId {
				panic("View struct may contain at most one EntityId field")
			}
			v.hasId = true
			v.idOffset = field.Offset
			continue
		}

		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}

		isOptional := false
		isExclude := false
		if !field.Anonymous {
			switch tag := field.Tag.Get("ecs"); tag {
			case "":
			case "optional":
				isOptional = true
			case "exclude":
				isExclude = true
			default:
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" and \"exclude\" are supported)")
			}
		}

		v.types = append(v.types, field.Type.Elem())
		v.optional = append(v.optional, isOptional)
		v.exclude = append(v.exclude, isExclude)
		v.fieldOffset = append(v.fieldOffset, field.Offset)
	}
}

// Fill populates the provided struct pointer with component data for the
// given entity. Returns false if the entity is dead, is missing a required
// component, or carries an excluded component.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	if !v.storage.Alive(id) {
		return false
	}
	return v.fillSlot(id, id.Slot(), unsafe.Pointer(ptr))
}

// Get returns a populated view struct for the given entity, or nil if the
// entity does not match the view.
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// Iter returns an iterator over all entities matching the view. The iterator
// yields (EntityId, T) pairs where T is the populated view struct. Structural
// changes during iteration must go through Commands.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		base := v.baseStore()
		if base == nil {
			return
		}

		var result T
		resultPtr := unsafe.Pointer(&result)

		for _, slot := range base.slots() {
			id := NewEntityId(slot, v.storage.generations[slot])
			if !v.fillSlot(id, slot, resultPtr) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Values returns an iterator over just the view structs.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Count returns the number of entities matching the view.
func (v *View[T]) Count() int {
	n := 0
	base := v.baseStore()
	if base == nil {
		return 0
	}

	var scratch T
	scratchPtr := unsafe.Pointer(&scratch)
	for _, slot := range base.slots() {
		id := NewEntityId(slot, v.storage.generations[slot])
		if v.fillSlot(id, slot, scratchPtr) {
			n++
		}
	}
	return n
}

// Spawn creates a new entity with components extracted from the view struct.
// Required fields must be non-nil; optional nil fields are skipped and
// excluded fields must stay nil.
func (v *View[T]) Spawn(data T) EntityId {
	rv := reflect.ValueOf(&data).Elem()

	components := make([]any, 0, len(v.types))
	fieldIdx := 0
	structType := rv.Type()
	for i := 0; i < structType.NumField(); i++ {
		if structType.Field(i).Type == reflect.TypeFor[EntityId]() {
			continue
		}

		field := rv.Field(i)
		if field.IsNil() {
			if !v.optional[fieldIdx] && !v.exclude[fieldIdx] {
				panic("required component is nil in View.Spawn")
			}
			fieldIdx++
			continue
		}
		if v.exclude[fieldIdx] {
			panic("excluded component must be nil in View.Spawn")
		}

		components = append(components, field.Elem().Interface())
		fieldIdx++
	}

	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}
	return v.storage.Spawn(components...)
}

// baseStore picks the smallest store among required component types; its
// owner list drives iteration. Returns nil when any required store is empty.
func (v *View[T]) baseStore() componentStore {
	var base componentStore
	for i, typ := range v.types {
		if v.optional[i] || v.exclude[i] {
			continue
		}
		store := v.storage.storeIfExists(typ)
		if store == nil || store.len() == 0 {
			return nil
		}
		if base == nil || store.len() < base.len() {
			base = store
		}
	}
	return base
}

// fillSlot writes the id and component pointers for one entity into the
// struct memory at resultPtr. The caller guarantees the slot is alive.
func (v *View[T]) fillSlot(id EntityId, slot uint32, resultPtr unsafe.Pointer) bool {
	for i, typ := range v.types {
		fieldPtr := unsafe.Pointer(uintptr(resultPtr) + v.fieldOffset[i])

		store := v.storage.storeIfExists(typ)
		var component any
		if store != nil {
			component = store.get(slot)
		}

		if v.exclude[i] {
			if component != nil {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		if component == nil {
			if !v.optional[i] {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		*(*unsafe.Pointer)(fieldPtr) = (*iface)(unsafe.Pointer(&component)).data
	}

	if v.hasId {
		*(*EntityId)(unsafe.Pointer(uintptr(resultPtr) + v.idOffset)) = id
	}
	return true
}
