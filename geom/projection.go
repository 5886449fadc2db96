package geom

import (
	"github.com/yohamta/donburi/features/math"
)

// ScalingMode selects which viewport dimension the camera maps exactly onto
// the window. The other dimension overflows and gets letterboxed.
type ScalingMode int

const (
	// FixedVertical maps the viewport height onto the window height.
	FixedVertical ScalingMode = iota
	// FixedHorizontal maps the viewport width onto the window width.
	FixedHorizontal
)

func (m ScalingMode) String() string {
	switch m {
	case FixedVertical:
		return "fixed-vertical"
	case FixedHorizontal:
		return "fixed-horizontal"
	}
	return "unknown"
}

// PixelsPerUnit returns how many screen pixels one world unit spans for a
// camera with the given mode and half-extent scale on a screen of the given
// pixel size.
func PixelsPerUnit(mode ScalingMode, scale, screenW, screenH float64) float64 {
	if mode == FixedHorizontal {
		return screenW / (2 * scale)
	}
	return screenH / (2 * scale)
}

// Project converts a world-space point (center origin, y up) to screen
// pixels (top-left origin, y down).
func Project(mode ScalingMode, scale, screenW, screenH float64, p math.Vec2) (float64, float64) {
	ppu := PixelsPerUnit(mode, scale, screenW, screenH)
	return screenW/2 + p.X*ppu, screenH/2 - p.Y*ppu
}

// Unproject converts a screen pixel position back to world space.
func Unproject(mode ScalingMode, scale, screenW, screenH, px, py float64) math.Vec2 {
	ppu := PixelsPerUnit(mode, scale, screenW, screenH)
	return math.Vec2{X: (px - screenW/2) / ppu, Y: (screenH/2 - py) / ppu}
}

// WorldToSpace converts a world-space center position and size to the
// top-left corner of the equivalent rectangle in a collision space of the
// given extents. Space coordinates are top-left anchored with y down, which
// is what resolv expects.
func WorldToSpace(pos, size math.Vec2, spaceW, spaceH float64) (float64, float64) {
	return pos.X - size.X/2 + spaceW/2, -pos.Y - size.Y/2 + spaceH/2
}

// SpaceToWorld is the inverse of WorldToSpace for a rectangle's top-left
// corner and size.
func SpaceToWorld(x, y float64, size math.Vec2, spaceW, spaceH float64) math.Vec2 {
	return math.Vec2{X: x + size.X/2 - spaceW/2, Y: spaceH/2 - y - size.Y/2}
}
