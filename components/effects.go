package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SquashData tracks the reversal squash effect on a sprite. In compresses
// the horizontal scale, Out releases it; both nil means no squash is
// active. ScaleX/ScaleY are multiplied into the sprite scale.
type SquashData struct {
	In     *gween.Tween
	Out    *gween.Tween
	ScaleX float64
	ScaleY float64
}

var Squash = donburi.NewComponentType[SquashData]()
