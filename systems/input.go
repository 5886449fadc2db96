package systems

import (
	"github.com/grayfold/letterbox/components"
	cfg "github.com/grayfold/letterbox/config"
	"github.com/grayfold/letterbox/geom"
	"github.com/grayfold/letterbox/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateInput handles the debug keys and cursor interaction with the
// bouncer. Must run before UpdateBounce so a click-reversal and a
// boundary-reversal cannot cancel each other within one tick.
func UpdateInput(e *ecs.ECS) {
	displayEntry, ok := components.Display.First(e.World)
	if !ok {
		return
	}
	display := components.Display.Get(displayEntry)

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		display.ShowOverlay = !display.ShowOverlay
		SaveCurrentSettings(display)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		SaveCurrentSettings(display)
	}

	updateCursor(e, display)
}

// updateCursor unprojects the cursor into world space and hit-tests it
// against the bouncer's collision shape.
func updateCursor(e *ecs.ECS, display *components.DisplayData) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	cx, cy := ebiten.CursorPosition()
	world := geom.Unproject(camera.Mode, camera.Scale,
		display.Width, display.Height, float64(cx), float64(cy))

	// Same world point expressed in the collision space frame.
	sx, sy := geom.WorldToSpace(world, math.Vec2{X: 0, Y: 0}, cfg.Space.Width, cfg.Space.Height)
	cursor := vector.Vector{sx, sy}

	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	tags.Bouncer.Each(e.World, func(entry *donburi.Entry) {
		bouncer := components.Bouncer.Get(entry)
		obj := components.Object.Get(entry)

		poly, ok := obj.Shape.(*resolv.ConvexPolygon)
		if !ok {
			return
		}
		bouncer.Hovered = poly.PointInside(cursor)

		if clicked && bouncer.Hovered {
			bouncer.Direction *= -1
			TriggerSquash(entry)
		}
	})
}
