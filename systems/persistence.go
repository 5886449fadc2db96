package systems

import (
	"encoding/json"
	"log"

	"github.com/grayfold/letterbox/components"
	cfg "github.com/grayfold/letterbox/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the window settings stored on disk
type SavedSettings struct {
	WindowWidth  int  `json:"windowWidth"`
	WindowHeight int  `json:"windowHeight"`
	Fullscreen   bool `json:"fullscreen"`
	ShowOverlay  bool `json:"showOverlay"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "letterbox",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. Returns nil without error when
// nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings writes settings to disk
func SaveSettings(settings *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings snapshots the live window state and overlay flag.
// Failures only warn; settings persistence is never fatal.
func SaveCurrentSettings(display *components.DisplayData) {
	w, h := ebiten.WindowSize()
	if w <= 0 || h <= 0 {
		w, h = cfg.C.WindowWidth, cfg.C.WindowHeight
	}
	_ = SaveSettings(&SavedSettings{
		WindowWidth:  w,
		WindowHeight: h,
		Fullscreen:   ebiten.IsFullscreen(),
		ShowOverlay:  display.ShowOverlay,
	})
}

// ApplySavedSettings restores window state from a previous run. Called
// before the game loop starts.
func ApplySavedSettings(settings *SavedSettings) {
	if settings == nil {
		return
	}
	if settings.WindowWidth > 0 && settings.WindowHeight > 0 {
		ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	}
	ebiten.SetFullscreen(settings.Fullscreen)
	cfg.Debug.ShowOverlay = settings.ShowOverlay
}
