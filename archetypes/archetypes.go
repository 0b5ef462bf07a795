package archetypes

import (
	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/automoto/flappy-gopher/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// Singletons
	GameState = newArchetype(
		components.GameState,
		components.Clock,
		components.Input,
		components.Score,
		components.Spawner,
		components.Contacts,
		components.Services,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)

	// World nodes
	Background = newArchetype(
		tags.Background,
		components.Object,
		components.Sprite,
	)
	ScrollTile = newArchetype(
		components.Object,
		components.Sprite,
		components.Scroll,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Velocity,
		components.Sprite,
		components.Tween,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
		components.Object,
		components.Sprite,
		components.Velocity,
		components.Lifetime,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	Ghost = newArchetype(
		tags.Ghost,
		components.Ghost,
		components.Object,
		components.Sprite,
		components.Lifetime,
	)

	// UI and effects
	Panel = newArchetype(
		components.Panel,
	)
	Overlay = newArchetype(
		components.Overlay,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
