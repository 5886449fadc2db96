package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData places an entity in world space. Position is the center of
// the entity, Scale is its size in units.
type TransformData struct {
	Position math.Vec2
	Scale    math.Vec2
}

var Transform = donburi.NewComponentType[TransformData]()
