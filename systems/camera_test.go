package systems

import (
	"testing"

	"github.com/grayfold/letterbox/components"
	cfg "github.com/grayfold/letterbox/config"
	"github.com/grayfold/letterbox/geom"
	"github.com/grayfold/letterbox/systems/factory"
	"github.com/grayfold/letterbox/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const delta = 1e-9

// newFitWorld builds a world with the display, camera and letterbox
// entities the resize handler operates on.
func newFitWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateDisplay(e)
	factory.CreateCamera(e)
	factory.CreateLetterboxes(e)
	return e
}

func pushResize(e *ecs.ECS, width, height float64, primary bool) {
	PushResize(e, components.ResizeEvent{
		Width:     width,
		Height:    height,
		WindowID:  0,
		IsPrimary: primary,
	})
}

func letterboxTransform(t *testing.T, e *ecs.ECS, id int) *components.TransformData {
	t.Helper()
	var found *components.TransformData
	tags.Letterbox.Each(e.World, func(entry *donburi.Entry) {
		if components.Letterbox.Get(entry).ID == id {
			found = components.Transform.Get(entry)
		}
	})
	require.NotNil(t, found, "letterbox %d missing", id)
	return found
}

func cameraData(t *testing.T, e *ecs.ECS) *components.CameraData {
	t.Helper()
	entry, ok := components.Camera.First(e.World)
	require.True(t, ok)
	return components.Camera.Get(entry)
}

func TestFitWideWindow(t *testing.T) {
	e := newFitWorld(t)

	// 1600x900 is wider than 20x15, so the height is fixed and the sides
	// get padded.
	pushResize(e, 1600, 900, true)
	UpdateCamera(e)

	camera := cameraData(t, e)
	assert.Equal(t, geom.FixedVertical, camera.Mode)
	assert.InDelta(t, 7.5, camera.Scale, delta)

	right := letterboxTransform(t, e, 0)
	assert.InDelta(t, 10.0/3.0, right.Scale.X, delta)
	assert.InDelta(t, 15.0, right.Scale.Y, delta)
	assert.InDelta(t, 35.0/3.0, right.Position.X, delta)
	assert.InDelta(t, 0.0, right.Position.Y, delta)

	left := letterboxTransform(t, e, 1)
	assert.InDelta(t, 10.0/3.0, left.Scale.X, delta)
	assert.InDelta(t, -35.0/3.0, left.Position.X, delta)
}

func TestFitTallWindow(t *testing.T) {
	e := newFitWorld(t)

	// 900x1600 is taller than 20x15: width fixed, top and bottom padded.
	// 45 px per unit, so the window is 1600/45 units tall.
	pushResize(e, 900, 1600, true)
	UpdateCamera(e)

	camera := cameraData(t, e)
	assert.Equal(t, geom.FixedHorizontal, camera.Mode)
	assert.InDelta(t, 10.0, camera.Scale, delta)

	visibleHeight := 1600.0 / 45.0
	pad := (visibleHeight - 15.0) / 2
	posY := (pad + 15.0) / 2

	top := letterboxTransform(t, e, 0)
	assert.InDelta(t, 20.0, top.Scale.X, delta)
	assert.InDelta(t, pad, top.Scale.Y, delta)
	assert.InDelta(t, 0.0, top.Position.X, delta)
	assert.InDelta(t, posY, top.Position.Y, delta)

	bottom := letterboxTransform(t, e, 1)
	assert.InDelta(t, pad, bottom.Scale.Y, delta)
	assert.InDelta(t, -posY, bottom.Position.Y, delta)
}

func TestFitExactAspect(t *testing.T) {
	e := newFitWorld(t)

	// 800x600 matches 20x15 exactly: fixed-vertical branch, bars collapse
	// to zero width.
	pushResize(e, 800, 600, true)
	UpdateCamera(e)

	camera := cameraData(t, e)
	assert.Equal(t, geom.FixedVertical, camera.Mode)
	assert.InDelta(t, 7.5, camera.Scale, delta)

	for id := 0; id <= 1; id++ {
		bar := letterboxTransform(t, e, id)
		assert.InDelta(t, 0.0, bar.Scale.X, delta)
		assert.InDelta(t, 15.0, bar.Scale.Y, delta)
	}
}

func TestNonPrimaryIgnored(t *testing.T) {
	e := newFitWorld(t)

	pushResize(e, 1600, 900, false)
	UpdateCamera(e)

	// Camera keeps its initial projection and the bars never got geometry.
	camera := cameraData(t, e)
	assert.Equal(t, geom.FixedVertical, camera.Mode)
	assert.InDelta(t, cfg.C.Units.Height/2, camera.Scale, delta)

	for id := 0; id <= 1; id++ {
		bar := letterboxTransform(t, e, id)
		assert.Zero(t, bar.Scale.X)
		assert.Zero(t, bar.Scale.Y)
	}
}

func TestFirstPrimaryEventWins(t *testing.T) {
	e := newFitWorld(t)

	// Only the first primary event of a batch is applied; the later tall
	// resize must not override it.
	pushResize(e, 500, 500, false)
	pushResize(e, 1600, 900, true)
	pushResize(e, 900, 1600, true)
	UpdateCamera(e)

	camera := cameraData(t, e)
	assert.Equal(t, geom.FixedVertical, camera.Mode)
	assert.InDelta(t, 7.5, camera.Scale, delta)

	// The batch is fully drained either way.
	displayEntry, ok := components.Display.First(e.World)
	require.True(t, ok)
	assert.Empty(t, components.Display.Get(displayEntry).Pending)
}

func TestLaterBatchStillApplies(t *testing.T) {
	e := newFitWorld(t)

	pushResize(e, 1600, 900, true)
	UpdateCamera(e)
	pushResize(e, 900, 1600, true)
	UpdateCamera(e)

	camera := cameraData(t, e)
	assert.Equal(t, geom.FixedHorizontal, camera.Mode)
	assert.InDelta(t, 10.0, camera.Scale, delta)
}

func TestMissingCameraPanics(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateDisplay(e)
	factory.CreateLetterboxes(e)

	pushResize(e, 1600, 900, true)
	require.Panics(t, func() { UpdateCamera(e) })
}
