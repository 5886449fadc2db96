package systems

import (
	"github.com/grayfold/letterbox/components"
	cfg "github.com/grayfold/letterbox/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Systems run at Ebiten's fixed 60 TPS.
const tickSeconds = 1.0 / 60.0

// UpdateSquash advances active squash tweens. The horizontal scale follows
// the tween; the vertical scale counter-stretches to keep the sprite's
// apparent volume.
func UpdateSquash(e *ecs.ECS) {
	components.Squash.Each(e.World, func(entry *donburi.Entry) {
		squash := components.Squash.Get(entry)

		var v float32
		var finished bool
		switch {
		case squash.In != nil:
			v, finished = squash.In.Update(tickSeconds)
			if finished {
				squash.In = nil
			}
		case squash.Out != nil:
			v, finished = squash.Out.Update(tickSeconds)
			if finished {
				squash.Out = nil
				squash.ScaleX = 1
				squash.ScaleY = 1
				return
			}
		default:
			return
		}

		squash.ScaleX = float64(v)
		squash.ScaleY = 2 - float64(v)
	})
}

// TriggerSquash starts the reversal squash on an entity. Retriggering while
// a squash is active starts over from full scale.
func TriggerSquash(entry *donburi.Entry) {
	if !entry.HasComponent(components.Squash) {
		return
	}
	squash := components.Squash.Get(entry)
	squash.In = gween.New(1, cfg.Effects.SquashScale, cfg.Effects.SquashInTime, ease.OutQuad)
	squash.Out = gween.New(cfg.Effects.SquashScale, 1, cfg.Effects.SquashOutTime, ease.OutQuad)
}
