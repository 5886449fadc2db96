package systems

import (
	"github.com/grayfold/letterbox/components"
	cfg "github.com/grayfold/letterbox/config"
	"github.com/grayfold/letterbox/geom"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects syncs every collision object with its entity's transform.
// The transform is authoritative; the resolv object only exists for
// hit-testing.
func UpdateObjects(e *ecs.ECS) {
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if entry.HasComponent(components.Transform) {
			t := components.Transform.Get(entry)
			obj.X, obj.Y = geom.WorldToSpace(t.Position, t.Scale, cfg.Space.Width, cfg.Space.Height)
			obj.W = t.Scale.X
			obj.H = t.Scale.Y
		}
		obj.Update()
	})
}
