package systems

import (
	"github.com/grayfold/letterbox/components"
	cfg "github.com/grayfold/letterbox/config"
	"github.com/grayfold/letterbox/geom"
	"github.com/grayfold/letterbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCamera refits the projection and the letterbox bars when the window
// changes size. Only the first primary-window event of a batch is applied;
// the rest of the batch is stale by then and gets dropped with it.
func UpdateCamera(e *ecs.ECS) {
	displayEntry, ok := components.Display.First(e.World)
	if !ok {
		return
	}
	display := components.Display.Get(displayEntry)
	if len(display.Pending) == 0 {
		return
	}
	pending := display.Pending
	display.Pending = display.Pending[:0]

	for _, ev := range pending {
		if !ev.IsPrimary {
			continue
		}
		// A minimized window reports zero size; there is nothing to fit.
		if ev.Width <= 0 || ev.Height <= 0 {
			continue
		}
		applyFit(e, ev)
		break
	}
}

// applyFit picks the scaling mode for the new window size and rewrites the
// camera projection and both letterbox rectangles.
func applyFit(e *ecs.ECS, ev components.ResizeEvent) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		// The scene cannot render without a camera.
		panic("no camera entity in world")
	}
	camera := components.Camera.Get(cameraEntry)

	units := cfg.C.Units

	mode := geom.FixedVertical
	scale := units.Height
	if ev.Width/ev.Height < units.Width/units.Height {
		mode = geom.FixedHorizontal
		scale = units.Width
	}

	switch mode {
	case geom.FixedVertical:
		setLetterboxesVertical(e, ev)
	case geom.FixedHorizontal:
		setLetterboxesHorizontal(e, ev)
	}

	camera.Mode = mode
	camera.Scale = scale / 2
}

// setLetterboxesVertical pads the left and right edges. The viewport height
// maps exactly onto the window height.
func setLetterboxesVertical(e *ecs.ECS, ev components.ResizeEvent) {
	units := cfg.C.Units

	pixelsPerUnit := ev.Height / units.Height
	visibleWidth := ev.Width / pixelsPerUnit

	barWidth := (visibleWidth - units.Width) / 2
	barPosX := (barWidth + units.Width) / 2

	tags.Letterbox.Each(e.World, func(entry *donburi.Entry) {
		letterbox := components.Letterbox.Get(entry)
		x := barPosX
		if letterbox.ID == 1 {
			x = -barPosX
		}
		setLetterbox(entry, barWidth, units.Height, x, 0)
	})
}

// setLetterboxesHorizontal pads the top and bottom edges. The viewport width
// maps exactly onto the window width.
func setLetterboxesHorizontal(e *ecs.ECS, ev components.ResizeEvent) {
	units := cfg.C.Units

	pixelsPerUnit := ev.Width / units.Width
	visibleHeight := ev.Height / pixelsPerUnit

	barHeight := (visibleHeight - units.Height) / 2
	barPosY := (barHeight + units.Height) / 2

	tags.Letterbox.Each(e.World, func(entry *donburi.Entry) {
		letterbox := components.Letterbox.Get(entry)
		y := barPosY
		if letterbox.ID == 1 {
			y = -barPosY
		}
		setLetterbox(entry, units.Width, barHeight, 0, y)
	})
}

func setLetterbox(entry *donburi.Entry, width, height, x, y float64) {
	t := components.Transform.Get(entry)
	t.Scale = math.Vec2{X: width, Y: height}
	t.Position = math.Vec2{X: x, Y: y}
}

// PushResize records a resize notification for the next UpdateCamera pass
// and keeps the display's current size up to date.
func PushResize(e *ecs.ECS, ev components.ResizeEvent) {
	displayEntry, ok := components.Display.First(e.World)
	if !ok {
		return
	}
	display := components.Display.Get(displayEntry)
	if ev.IsPrimary {
		display.Width = ev.Width
		display.Height = ev.Height
	}
	display.Pending = append(display.Pending, ev)
}
