package sim

import "github.com/plus3/meadow/ecs"

// RegisterComponents registers every simulation component type.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Movement](registry)
	ecs.RegisterComponent[Topplegrass](registry)
	ecs.RegisterComponent[FreeFall](registry)
	ecs.RegisterComponent[Creature](registry)
}

// AddResources installs the simulation singletons into storage.
func AddResources(storage *ecs.Storage, wind Wind, bounds WorldBounds, tuning Tuning) {
	storage.AddSingleton(wind)
	storage.AddSingleton(bounds)
	storage.AddSingleton(tuning)
	storage.AddSingleton(ActionEvents{})
	storage.AddSingleton(SpawnEvents{})
}

// RegisterSystems registers the simulation systems in dispatch order.
func RegisterSystems(scheduler *ecs.Scheduler) {
	scheduler.Register(&SpawnSystem{})
	scheduler.Register(&WindControlSystem{})
	scheduler.Register(&TopplingSystem{})
	scheduler.Register(&GravitySystem{})
	scheduler.Register(&MovementSystem{})
	scheduler.Register(&DespawnSystem{})
}
