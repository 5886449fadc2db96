package systems

import (
	"testing"

	"github.com/grayfold/letterbox/components"
	cfg "github.com/grayfold/letterbox/config"
	"github.com/grayfold/letterbox/tags"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// newBouncerWorld spawns a bare bouncer without the sprite or collision
// object, which the bounce system doesn't touch.
func newBouncerWorld(x float64, direction int) (*ecs.ECS, *donburi.Entry) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := e.World.Entry(e.Create(cfg.Default,
		tags.Bouncer,
		components.Bouncer,
		components.Transform,
	))
	components.Bouncer.SetValue(entry, components.BouncerData{Direction: direction})
	components.Transform.SetValue(entry, components.TransformData{
		Position: math.Vec2{X: x, Y: 0},
		Scale:    math.Vec2{X: 1, Y: 1},
	})
	return e, entry
}

func TestBounceStepIsExact(t *testing.T) {
	for _, direction := range []int{1, -1} {
		for _, x := range []float64{0, 2.5, -7.25} {
			e, entry := newBouncerWorld(x, direction)
			UpdateBounce(e)

			got := components.Transform.Get(entry).Position.X
			assert.Equal(t, x+float64(direction)*cfg.Bounce.Speed, got)
		}
	}
}

func TestBounceFlipsBeyondRightEdge(t *testing.T) {
	// Past (20+4)/2 the direction flips before the step is applied.
	start := 12.1
	e, entry := newBouncerWorld(start, 1)
	UpdateBounce(e)

	bouncer := components.Bouncer.Get(entry)
	assert.Equal(t, -1, bouncer.Direction)
	assert.InDelta(t, start-cfg.Bounce.Speed, components.Transform.Get(entry).Position.X, 1e-12)
}

func TestBounceFlipsBeyondLeftEdge(t *testing.T) {
	start := -12.1
	e, entry := newBouncerWorld(start, -1)
	UpdateBounce(e)

	bouncer := components.Bouncer.Get(entry)
	assert.Equal(t, 1, bouncer.Direction)
	assert.InDelta(t, start+cfg.Bounce.Speed, components.Transform.Get(entry).Position.X, 1e-12)
}

func TestBounceStaysInsideTurnaroundAtEdgeExactly(t *testing.T) {
	// The threshold is strict: sitting exactly on the limit does not flip.
	limit := (cfg.C.Units.Width + cfg.Bounce.Margin) / 2
	e, entry := newBouncerWorld(limit, 1)
	UpdateBounce(e)

	assert.Equal(t, 1, components.Bouncer.Get(entry).Direction)
}

func TestDirectionInvariantOverManyTicks(t *testing.T) {
	e, entry := newBouncerWorld(0, 1)
	limit := (cfg.C.Units.Width + cfg.Bounce.Margin) / 2

	for i := 0; i < 20000; i++ {
		UpdateBounce(e)
		bouncer := components.Bouncer.Get(entry)
		if bouncer.Direction != 1 && bouncer.Direction != -1 {
			t.Fatalf("tick %d: direction %d", i, bouncer.Direction)
		}
		// One step past the limit is the farthest the bouncer can get.
		x := components.Transform.Get(entry).Position.X
		assert.LessOrEqual(t, x, limit+cfg.Bounce.Speed+delta)
		assert.GreaterOrEqual(t, x, -limit-cfg.Bounce.Speed-delta)
	}
}
