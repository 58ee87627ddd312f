package ecs

import "iter"

// Query wraps a View and snapshots matches before yielding them, so a system
// may perform direct structural changes (Storage.Spawn, Storage.Delete)
// while iterating without invalidating the loop. The snapshot buffers are
// reused between frames to stay allocation-free in steady state.
//
// Declare Query fields on system structs; the Scheduler initializes them
// during registration.
type Query[T any] struct {
	view     View[T]
	entities []EntityId
	items    []T
}

// NewQuery creates a new Query for the given storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init initializes or re-initializes the Query with a storage.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(storage *Storage) {
	q.view.Init(storage)
	q.entities = q.entities[:0]
	q.items = q.items[:0]
}

// Iter returns an iterator over entity IDs and component data. Component
// pointers in the yielded structs are valid until the next structural change;
// deferred mutation through Commands is always safe.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	q.collect()
	return func(yield func(EntityId, T) bool) {
		for i := range q.entities {
			if !yield(q.entities[i], q.items[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over component data only.
func (q *Query[T]) Values() iter.Seq[T] {
	q.collect()
	return func(yield func(T) bool) {
		for i := range q.items {
			if !yield(q.items[i]) {
				return
			}
		}
	}
}

// Count returns the number of entities currently matching the query.
func (q *Query[T]) Count() int {
	return q.view.Count()
}

// Get returns a populated view struct for one entity, or nil if the entity
// does not match.
func (q *Query[T]) Get(id EntityId) *T {
	return q.view.Get(id)
}

func (q *Query[T]) collect() {
	q.entities = q.entities[:0]
	q.items = q.items[:0]
	for id, item := range q.view.Iter() {
		q.entities = append(q.entities, id)
		q.items = append(q.items, item)
	}
}
