package systems

import (
	"github.com/grayfold/letterbox/components"
	cfg "github.com/grayfold/letterbox/config"
	"github.com/grayfold/letterbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBounce moves every bouncer horizontally and turns it around once it
// is far enough outside the viewport to have slid under a letterbox.
// Movement is a fixed step per tick, so on-screen speed follows the tick
// rate; Ebiten holds that at 60 TPS.
func UpdateBounce(e *ecs.ECS) {
	limit := (cfg.C.Units.Width + cfg.Bounce.Margin) / 2

	tags.Bouncer.Each(e.World, func(entry *donburi.Entry) {
		bouncer := components.Bouncer.Get(entry)
		t := components.Transform.Get(entry)

		if t.Position.X > limit || t.Position.X < -limit {
			bouncer.Direction *= -1
			TriggerSquash(entry)
		}

		t.Position.X += float64(bouncer.Direction) * cfg.Bounce.Speed
	})
}
