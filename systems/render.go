package systems

import (
	"github.com/grayfold/letterbox/components"
	cfg "github.com/grayfold/letterbox/config"
	"github.com/grayfold/letterbox/geom"
	"github.com/grayfold/letterbox/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawBackdrop renders the checkerboard filling the virtual viewport, one
// flat rect per tile. Tiles are exactly one unit square.
func DrawBackdrop(e *ecs.ECS, screen *ebiten.Image) {
	camera, ok := firstCamera(e)
	if !ok {
		return
	}
	backdropEntry, ok := components.Backdrop.First(e.World)
	if !ok {
		return
	}
	backdrop := components.Backdrop.Get(backdropEntry)

	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	ppu := geom.PixelsPerUnit(camera.Mode, camera.Scale, width, height)
	units := cfg.C.Units

	for row := 0; row < backdrop.Rows; row++ {
		for col := 0; col < backdrop.Cols; col++ {
			topLeft := math.Vec2{
				X: -units.Width/2 + float64(col),
				Y: units.Height/2 - float64(row),
			}
			px, py := geom.Project(camera.Mode, camera.Scale, width, height, topLeft)

			shade := cfg.LightTile
			if backdrop.Dark[row*backdrop.Cols+col] {
				shade = cfg.DarkTile
			}
			vector.DrawFilledRect(screen,
				float32(px), float32(py),
				float32(ppu), float32(ppu),
				shade, false)
		}
	}
}

// DrawSprites renders entities with a Sprite component, scaled so their
// transform size in units lands on the right number of pixels.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	camera, ok := firstCamera(e)
	if !ok {
		return
	}

	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	ppu := geom.PixelsPerUnit(camera.Mode, camera.Scale, width, height)

	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		sprite := components.Sprite.Get(entry)
		t := components.Transform.Get(entry)

		scaleX, scaleY := t.Scale.X, t.Scale.Y
		if entry.HasComponent(components.Squash) {
			squash := components.Squash.Get(entry)
			scaleX *= squash.ScaleX
			scaleY *= squash.ScaleY
		}

		imgW := float64(sprite.Image.Bounds().Dx())
		imgH := float64(sprite.Image.Bounds().Dy())
		drawW := scaleX * ppu
		drawH := scaleY * ppu

		px, py := geom.Project(camera.Mode, camera.Scale, width, height, t.Position)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(drawW/imgW, drawH/imgH)
		drawOp.GeoM.Translate(px-drawW/2, py-drawH/2)

		if entry.HasComponent(components.Bouncer) {
			bouncer := components.Bouncer.Get(entry)
			if bouncer.Hovered {
				drawOp.ColorScale.Scale(1, 0.85, 0.55, 1)
			}
		}

		screen.DrawImage(sprite.Image, drawOp)
	})
}

// DrawLetterboxes paints the two bars on top of everything in world space.
func DrawLetterboxes(e *ecs.ECS, screen *ebiten.Image) {
	camera, ok := firstCamera(e)
	if !ok {
		return
	}

	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	ppu := geom.PixelsPerUnit(camera.Mode, camera.Scale, width, height)

	tags.Letterbox.Each(e.World, func(entry *donburi.Entry) {
		t := components.Transform.Get(entry)
		if t.Scale.X <= 0 || t.Scale.Y <= 0 {
			return
		}

		topLeft := math.Vec2{X: t.Position.X - t.Scale.X/2, Y: t.Position.Y + t.Scale.Y/2}
		px, py := geom.Project(camera.Mode, camera.Scale, width, height, topLeft)

		vector.DrawFilledRect(screen,
			float32(px), float32(py),
			float32(t.Scale.X*ppu), float32(t.Scale.Y*ppu),
			cfg.Black, false)
	})
}

func firstCamera(e *ecs.ECS) (*components.CameraData, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(cameraEntry), true
}
