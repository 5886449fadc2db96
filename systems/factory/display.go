package factory

import (
	"github.com/grayfold/letterbox/archetypes"
	"github.com/grayfold/letterbox/components"
	cfg "github.com/grayfold/letterbox/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDisplay spawns the display singleton tracking window size and
// pending resize events.
func CreateDisplay(ecs *ecs.ECS) *donburi.Entry {
	display := archetypes.Display.Spawn(ecs)
	components.Display.Set(display, &components.DisplayData{
		Width:       float64(cfg.C.WindowWidth),
		Height:      float64(cfg.C.WindowHeight),
		ShowOverlay: cfg.Debug.ShowOverlay,
	})
	return display
}
