package systems

import (
	"fmt"

	"github.com/grayfold/letterbox/components"
	cfg "github.com/grayfold/letterbox/config"
	"github.com/grayfold/letterbox/fonts"
	"github.com/grayfold/letterbox/geom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawOverlay renders the F3 debug overlay: window size, scaling mode,
// pixels-per-unit and current letterbox pad.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	displayEntry, ok := components.Display.First(e.World)
	if !ok {
		return
	}
	display := components.Display.Get(displayEntry)
	if !display.ShowOverlay {
		return
	}

	camera, ok := firstCamera(e)
	if !ok {
		return
	}

	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	ppu := geom.PixelsPerUnit(camera.Mode, camera.Scale, width, height)

	pad := 0.0
	if letterboxEntry, ok := components.Letterbox.First(e.World); ok {
		t := components.Transform.Get(letterboxEntry)
		if camera.Mode == geom.FixedVertical {
			pad = t.Scale.X
		} else {
			pad = t.Scale.Y
		}
	}

	lines := []string{
		fmt.Sprintf("window  %.0fx%.0f px", display.Width, display.Height),
		fmt.Sprintf("mode    %s", camera.Mode),
		fmt.Sprintf("scale   %.3f px/unit", ppu),
		fmt.Sprintf("pad     %.3f units", pad),
	}

	face := fonts.Regular.Get()
	for i, line := range lines {
		y := cfg.Overlay.Margin + (i+1)*cfg.Overlay.LineHeight
		text.Draw(screen, line, face, cfg.Overlay.Margin, y, cfg.Overlay.TextColor)
	}
}
