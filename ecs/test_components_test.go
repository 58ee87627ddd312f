package ecs_test

import "github.com/plus3/meadow/ecs"

// Common test component types
type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

type Health struct {
	Current int
	Max     int
}

type Name struct {
	Value string
}

type Frozen struct{}

type Burning struct{}

// Custom primitive type for testing non-struct components
type Score int32

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Health](registry)
	ecs.RegisterComponent[Name](registry)
	ecs.RegisterComponent[Frozen](registry)
	ecs.RegisterComponent[Burning](registry)
	ecs.RegisterComponent[Score](registry)
	return registry
}

func newTestStorage() *ecs.Storage {
	return ecs.NewStorage(newTestRegistry())
}
