package factory

import (
	"github.com/grayfold/letterbox/archetypes"
	"github.com/grayfold/letterbox/components"
	cfg "github.com/grayfold/letterbox/config"
	"github.com/grayfold/letterbox/geom"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the single camera entity. The projection starts in
// fixed-vertical mode; the first resize event refits it.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Mode:  geom.FixedVertical,
		Scale: cfg.C.Units.Height / 2,
	})
	return camera
}
