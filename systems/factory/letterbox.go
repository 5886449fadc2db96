package factory

import (
	"github.com/grayfold/letterbox/archetypes"
	"github.com/grayfold/letterbox/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateLetterboxes spawns the two letterbox bars. They start with zero
// size; the resize event fired when the window is created gives them their
// first real geometry, so there is nothing to compute here.
func CreateLetterboxes(ecs *ecs.ECS) {
	createLetterbox(ecs, 0)
	createLetterbox(ecs, 1)
}

func createLetterbox(ecs *ecs.ECS, id int) *donburi.Entry {
	letterbox := archetypes.Letterbox.Spawn(ecs)
	components.Letterbox.SetValue(letterbox, components.LetterboxData{ID: id})
	components.Transform.SetValue(letterbox, components.TransformData{
		Position: math.Vec2{X: 0, Y: 0},
		Scale:    math.Vec2{X: 0, Y: 0},
	})
	return letterbox
}
