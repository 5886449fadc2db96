package components

import "github.com/yohamta/donburi"

// ResizeEvent is a window-resize notification from the engine.
type ResizeEvent struct {
	Width     float64
	Height    float64
	WindowID  int
	IsPrimary bool
}

// DisplayData is the singleton that tracks the current window size and the
// batch of resize events waiting for the camera system.
type DisplayData struct {
	Width       float64
	Height      float64
	Pending     []ResizeEvent
	ShowOverlay bool
}

var Display = donburi.NewComponentType[DisplayData]()
