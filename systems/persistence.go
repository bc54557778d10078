package systems

import (
	"fmt"
	"log"

	cfg "github.com/automoto/megaphone/config"
	"github.com/quasilyte/gdata"
	"gopkg.in/yaml.v3"
)

// SavedSettings is what survives a restart. Level progress is never saved.
type SavedSettings struct {
	SFXVolume float64 `yaml:"sfx_volume"`
	Muted     bool    `yaml:"muted"`
}

var settingsStore *gdata.Manager

// InitPersistence opens the per-user settings store.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "megaphone",
	})
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	settingsStore = m
	return nil
}

// LoadSettings returns nil, nil when no store is open or nothing was saved.
func LoadSettings() (*SavedSettings, error) {
	if settingsStore == nil {
		return nil, nil
	}

	data, err := settingsStore.LoadItem(cfg.Audio.SettingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	return decodeSettings(data)
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	if len(data) == 0 {
		return nil, nil
	}
	settings := SavedSettings{SFXVolume: cfg.Audio.DefaultSFXVol}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings writes s to the store. Without a store it does nothing.
func SaveSettings(s *SavedSettings) error {
	if settingsStore == nil {
		return nil
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := settingsStore.SaveItem(cfg.Audio.SettingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SaveCurrentSettings stores the live audio settings, logging failures.
func SaveCurrentSettings() {
	err := SaveSettings(&SavedSettings{
		SFXVolume: globalSFXVolume,
		Muted:     globalMuted,
	})
	if err != nil {
		log.Printf("Warning: %v", err)
	}
}

// ApplySavedSettings applies loaded settings to the audio globals.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	SetSFXVolume(saved.SFXVolume)
	SetMuted(saved.Muted)
}
