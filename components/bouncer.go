package components

import (
	"github.com/yohamta/donburi"
)

// BouncerData drives the horizontal bounce. Direction is always +1 or -1.
type BouncerData struct {
	Direction int
	Hovered   bool // cursor is over the sprite this frame
}

var Bouncer = donburi.NewComponentType[BouncerData]()
