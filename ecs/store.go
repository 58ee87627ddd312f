package ecs

import "github.com/kamstrup/intmap"

// componentStore is a type-erased handle on the per-type component storage.
type componentStore interface {
	add(slot uint32, component any) bool
	remove(slot uint32) bool
	get(slot uint32) any
	has(slot uint32) bool
	len() int
	slots() []uint32
}

// genericStore keeps components of a single type T in a sparse set: dense
// value and owner slices for iteration, and a slot->dense index map for
// lookups. Removal swaps with the last element, so component pointers are
// only stable until the next structural change; systems that add or remove
// components mid-frame must go through Commands.
type genericStore[T any] struct {
	values []T
	owners []uint32
	index  *intmap.Map[uint32, int]
}

func newGenericStore[T any]() *genericStore[T] {
	return &genericStore[T]{
		index: intmap.New[uint32, int](64),
	}
}

// add inserts or overwrites the component for the given slot.
func (s *genericStore[T]) add(slot uint32, component any) bool {
	var value T
	switch c := component.(type) {
	case T:
		value = c
	case *T:
		value = *c
	default:
		return false
	}

	if i, ok := s.index.Get(slot); ok {
		s.values[i] = value
		return true
	}

	s.values = append(s.values, value)
	s.owners = append(s.owners, slot)
	s.index.Put(slot, len(s.values)-1)
	return true
}

func (s *genericStore[T]) remove(slot uint32) bool {
	i, ok := s.index.Get(slot)
	if !ok {
		return false
	}

	last := len(s.values) - 1
	if i != last {
		s.values[i] = s.values[last]
		s.owners[i] = s.owners[last]
		s.index.Put(s.owners[i], i)
	}

	var zero T
	s.values[last] = zero
	s.values = s.values[:last]
	s.owners = s.owners[:last]
	s.index.Del(slot)
	return true
}

// get returns a *T (as any) pointing into the dense array, or nil.
func (s *genericStore[T]) get(slot uint32) any {
	i, ok := s.index.Get(slot)
	if !ok {
		return nil
	}
	return &s.values[i]
}

func (s *genericStore[T]) has(slot uint32) bool {
	_, ok := s.index.Get(slot)
	return ok
}

func (s *genericStore[T]) len() int {
	return len(s.values)
}

// slots returns the dense owner list. Callers must not mutate it.
func (s *genericStore[T]) slots() []uint32 {
	return s.owners
}
