package factory

import (
	"github.com/grayfold/letterbox/archetypes"
	"github.com/grayfold/letterbox/components"
	cfg "github.com/grayfold/letterbox/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns the resolv space covering the bounce range.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, &components.SpaceData{
		Space: resolv.NewSpace(
			int(cfg.Space.Width),
			int(cfg.Space.Height),
			cfg.Space.CellSize,
			cfg.Space.CellSize,
		),
	})
	return space
}
