package factory

import (
	"github.com/grayfold/letterbox/archetypes"
	"github.com/grayfold/letterbox/components"
	cfg "github.com/grayfold/letterbox/config"
	"github.com/grayfold/letterbox/geom"
	"github.com/grayfold/letterbox/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateBouncer spawns the bouncing sprite at the viewport center, one unit
// square, moving right.
func CreateBouncer(ecs *ecs.ECS) *donburi.Entry {
	bouncer := archetypes.Bouncer.Spawn(ecs)

	components.Bouncer.SetValue(bouncer, components.BouncerData{Direction: 1})

	pos := math.Vec2{X: 0, Y: 0}
	size := math.Vec2{X: 1, Y: 1}
	components.Transform.SetValue(bouncer, components.TransformData{
		Position: pos,
		Scale:    size,
	})

	img := ebiten.NewImage(8, 8)
	img.Fill(cfg.White)
	components.Sprite.SetValue(bouncer, components.SpriteData{Image: img})

	components.Squash.SetValue(bouncer, components.SquashData{ScaleX: 1, ScaleY: 1})

	// Collision object for cursor hit-testing, kept in sync by UpdateObjects.
	x, y := geom.WorldToSpace(pos, size, cfg.Space.Width, cfg.Space.Height)
	obj := resolv.NewObject(x, y, size.X, size.Y, tags.ResolvBouncer)
	obj.SetShape(resolv.NewRectangle(0, 0, size.X, size.Y))
	obj.Data = bouncer
	components.Object.SetValue(bouncer, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return bouncer
}
