package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestPixelsPerUnit(t *testing.T) {
	// Fixed-vertical with scale 7.5 on a 900px-tall window: 60 px per unit,
	// regardless of width.
	assert.InDelta(t, 60.0, PixelsPerUnit(FixedVertical, 7.5, 1600, 900), 1e-9)
	assert.InDelta(t, 60.0, PixelsPerUnit(FixedVertical, 7.5, 123, 900), 1e-9)

	// Fixed-horizontal with scale 10 on a 900px-wide window: 45 px per unit.
	assert.InDelta(t, 45.0, PixelsPerUnit(FixedHorizontal, 10, 900, 1600), 1e-9)
}

func TestProjectCenterAndAxes(t *testing.T) {
	px, py := Project(FixedVertical, 7.5, 1600, 900, math.Vec2{X: 0, Y: 0})
	assert.InDelta(t, 800.0, px, 1e-9)
	assert.InDelta(t, 450.0, py, 1e-9)

	// +x goes right, +y goes up.
	px, py = Project(FixedVertical, 7.5, 1600, 900, math.Vec2{X: 10, Y: 7.5})
	assert.InDelta(t, 800.0+600.0, px, 1e-9)
	assert.InDelta(t, 0.0, py, 1e-9)
}

func TestUnprojectRoundTrip(t *testing.T) {
	for _, mode := range []ScalingMode{FixedVertical, FixedHorizontal} {
		p := math.Vec2{X: -3.25, Y: 4.5}
		px, py := Project(mode, 7.5, 1377, 891, p)
		back := Unproject(mode, 7.5, 1377, 891, px, py)
		assert.InDelta(t, p.X, back.X, 1e-9)
		assert.InDelta(t, p.Y, back.Y, 1e-9)
	}
}

func TestWorldToSpaceRoundTrip(t *testing.T) {
	size := math.Vec2{X: 1, Y: 1}
	pos := math.Vec2{X: -2, Y: 3}

	x, y := WorldToSpace(pos, size, 28, 15)
	assert.InDelta(t, 28.0/2-2-0.5, x, 1e-9)
	assert.InDelta(t, 15.0/2-3-0.5, y, 1e-9)

	back := SpaceToWorld(x, y, size, 28, 15)
	assert.InDelta(t, pos.X, back.X, 1e-9)
	assert.InDelta(t, pos.Y, back.Y, 1e-9)
}

func TestScalingModeString(t *testing.T) {
	assert.Equal(t, "fixed-vertical", FixedVertical.String())
	assert.Equal(t, "fixed-horizontal", FixedHorizontal.String())
}
