package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/skater/components"
	cfg "github.com/automoto/skater/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	VolumeIndex     int  `json:"volumeIndex"`
	Debug           bool `json:"debug"`
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the per-user save location
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Save.AppName,
	})
	if err != nil {
		return fmt.Errorf("open save data: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil with no error when
// nothing was saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Save.SettingsKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := gdataManager.SaveItem(cfg.Save.SettingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SaveCurrentSettings persists the Settings component, logging failures
func SaveCurrentSettings(s *components.SettingsData) {
	err := SaveSettings(&SavedSettings{
		VolumeIndex:     s.VolumeIndex,
		Debug:           s.Debug,
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
	})
	if err != nil {
		log.Printf("Warning: %v", err)
	}
}

// ApplySavedSettingsGlobal applies settings before any scene exists
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	startupSettings = *saved
	hasStartupSettings = true

	SetMasterVolume(volumeStep(saved.VolumeIndex))
	if saved.Debug {
		cfg.Debug.Overlay = true
	}
	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		res := cfg.Settings.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}
