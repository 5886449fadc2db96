package tags

import "github.com/yohamta/donburi"

var (
	Bouncer   = donburi.NewTag().SetName("Bouncer")
	Letterbox = donburi.NewTag().SetName("Letterbox")
)

// Resolv tags for collision objects
const (
	ResolvBouncer = "bouncer"
)
