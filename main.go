package main

import (
	"log"

	"github.com/grayfold/letterbox/config"
	"github.com/grayfold/letterbox/fonts"
	"github.com/grayfold/letterbox/scenes"
	"github.com/grayfold/letterbox/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Resizer is implemented by scenes that care about window-resize
// notifications.
type Resizer interface {
	Resize(width, height float64)
}

type Game struct {
	scene Scene

	outsideWidth  int
	outsideHeight int
	lastWidth     int
	lastHeight    int
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
	// Force a resize delivery so the new scene starts with the current fit.
	g.lastWidth, g.lastHeight = 0, 0
}

func NewGame() *Game {
	fonts.LoadFont(fonts.Regular, goregular.TTF)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 32)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 10)

	g := &Game{}

	if config.Debug.SkipTitle {
		g.scene = scenes.NewStageScene(g)
	} else {
		g.scene = scenes.NewTitleScene(g)
	}

	return g
}

func (g *Game) Update() error {
	if g.outsideWidth != g.lastWidth || g.outsideHeight != g.lastHeight {
		g.lastWidth, g.lastHeight = g.outsideWidth, g.outsideHeight
		if r, ok := g.scene.(Resizer); ok {
			r.Resize(float64(g.outsideWidth), float64(g.outsideHeight))
		}
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout renders pixel-perfect at the window size; the camera system owns
// the viewport fit instead of Ebiten's built-in scaling.
func (g *Game) Layout(width, height int) (int, int) {
	g.outsideWidth, g.outsideHeight = width, height
	return width, height
}

func main() {
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.WindowWidth, config.C.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and restore saved window settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
