package assets

import (
	"embed"
	"fmt"

	"github.com/lafriks/go-tiled"
)

//go:embed backdrop.tmx
var assetFS embed.FS

// Backdrop is the parsed checkerboard map that fills the virtual viewport.
type Backdrop struct {
	Cols int
	Rows int
	Dark []bool // row-major, true for the darker of the two tile shades
}

// LoadBackdrop parses the embedded backdrop map. The map must be a single
// tile layer whose dimensions match the virtual viewport in whole units.
func LoadBackdrop() (*Backdrop, error) {
	m, err := tiled.LoadFile("backdrop.tmx", tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("failed to load backdrop map: %w", err)
	}

	if len(m.Layers) == 0 {
		return nil, fmt.Errorf("backdrop map has no layers")
	}
	layer := m.Layers[0]

	if len(layer.Tiles) != m.Width*m.Height {
		return nil, fmt.Errorf("backdrop layer has %d tiles, want %d", len(layer.Tiles), m.Width*m.Height)
	}

	b := &Backdrop{
		Cols: m.Width,
		Rows: m.Height,
		Dark: make([]bool, len(layer.Tiles)),
	}
	for i, t := range layer.Tiles {
		if t.IsNil() {
			continue
		}
		b.Dark[i] = t.ID == 0
	}
	return b, nil
}
