package scenes

import (
	"image/color"
	"sync"

	"github.com/grayfold/letterbox/components"
	cfg "github.com/grayfold/letterbox/config"
	"github.com/grayfold/letterbox/systems"
	"github.com/grayfold/letterbox/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StageScene runs the bounce stage: one bouncer, two letterbox bars, and
// the camera fit driven by window resizes.
type StageScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once

	// Resizes delivered before the first Update are replayed at configure
	// time so the initial fit is never lost.
	pending []components.ResizeEvent
}

// NewStageScene creates a new stage scene
func NewStageScene(sc SceneChanger) *StageScene {
	return &StageScene{sceneChanger: sc}
}

func (ss *StageScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ss.sceneChanger.ChangeScene(NewTitleScene(ss.sceneChanger))
	}
}

func (ss *StageScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

// Resize queues a window-resize notification for the camera system.
func (ss *StageScene) Resize(width, height float64) {
	ev := components.ResizeEvent{
		Width:     width,
		Height:    height,
		WindowID:  0,
		IsPrimary: true,
	}
	if ss.ecs == nil {
		ss.pending = append(ss.pending, ev)
		return
	}
	systems.PushResize(ss.ecs, ev)
}

func (ss *StageScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateBounce)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateSquash)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawBackdrop)
	e.AddRenderer(cfg.Default, systems.DrawSprites)
	e.AddRenderer(cfg.Default, systems.DrawLetterboxes)
	e.AddRenderer(cfg.Default, systems.DrawOverlay)

	ss.ecs = e

	factory.CreateDisplay(ss.ecs)
	factory.CreateCamera(ss.ecs)
	factory.CreateSpace(ss.ecs)
	factory.CreateBackdrop(ss.ecs)
	factory.CreateLetterboxes(ss.ecs)
	factory.CreateBouncer(ss.ecs)

	// Replay resizes that arrived before the world existed.
	for _, ev := range ss.pending {
		systems.PushResize(ss.ecs, ev)
	}
	ss.pending = nil
}
