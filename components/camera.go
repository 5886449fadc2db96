package components

import (
	"github.com/grayfold/letterbox/geom"
	"github.com/yohamta/donburi"
)

// CameraData is the orthographic projection record. Scale is the half-extent
// of whichever viewport dimension the scaling mode fixes to the window.
type CameraData struct {
	Mode  geom.ScalingMode
	Scale float64
}

var Camera = donburi.NewComponentType[CameraData]()
