package scenes

import (
	"image/color"

	cfg "github.com/grayfold/letterbox/config"
	"github.com/grayfold/letterbox/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// TitleScene displays the title and waits for Enter.
type TitleScene struct {
	sceneChanger SceneChanger
}

// NewTitleScene creates a new title scene
func NewTitleScene(sc SceneChanger) *TitleScene {
	return &TitleScene{sceneChanger: sc}
}

func (ts *TitleScene) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ts.sceneChanger.ChangeScene(NewStageScene(ts.sceneChanger))
	}
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	titleFont := fonts.Title.Get()
	title := cfg.C.Title
	titleBounds := text.BoundString(titleFont, title)
	titleX := (width - titleBounds.Dx()) / 2
	text.Draw(screen, title, titleFont, titleX, cfg.Title.TitleY, cfg.Title.TitleColor)

	hintFont := fonts.Regular.Get()
	hint := "press Enter"
	hintBounds := text.BoundString(hintFont, hint)
	hintX := (width - hintBounds.Dx()) / 2
	text.Draw(screen, hint, hintFont, hintX, height-cfg.Title.HintMargin, cfg.Title.HintColor)
}
