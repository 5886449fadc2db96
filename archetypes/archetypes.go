package archetypes

import (
	"github.com/grayfold/letterbox/components"
	cfg "github.com/grayfold/letterbox/config"
	"github.com/grayfold/letterbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Camera = newArchetype(
		components.Camera,
	)
	Display = newArchetype(
		components.Display,
	)
	Space = newArchetype(
		components.Space,
	)
	Backdrop = newArchetype(
		components.Backdrop,
	)
	Letterbox = newArchetype(
		tags.Letterbox,
		components.Letterbox,
		components.Transform,
	)
	Bouncer = newArchetype(
		tags.Bouncer,
		components.Bouncer,
		components.Transform,
		components.Sprite,
		components.Object,
		components.Squash,
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
