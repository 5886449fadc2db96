package components

import "github.com/yohamta/donburi"

// BackdropData is the checkerboard filling the virtual viewport. Dark is
// row-major, one entry per tile.
type BackdropData struct {
	Cols int
	Rows int
	Dark []bool
}

var Backdrop = donburi.NewComponentType[BackdropData]()
