package factory

import (
	"github.com/grayfold/letterbox/archetypes"
	"github.com/grayfold/letterbox/assets"
	"github.com/grayfold/letterbox/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBackdrop spawns the checkerboard entity from the embedded map. The
// scene cannot render without it, so a load failure is fatal.
func CreateBackdrop(ecs *ecs.ECS) *donburi.Entry {
	b, err := assets.LoadBackdrop()
	if err != nil {
		panic("failed to load backdrop: " + err.Error())
	}

	backdrop := archetypes.Backdrop.Spawn(ecs)
	components.Backdrop.SetValue(backdrop, components.BackdropData{
		Cols: b.Cols,
		Rows: b.Rows,
		Dark: b.Dark,
	})
	return backdrop
}
