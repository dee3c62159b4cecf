package systems

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/stretch/config"
	"github.com/quasilyte/gdata"
)

const (
	settingsKey = "settings"
	recordsKey  = "records"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume float64 `json:"sfxVolume"`
	Muted     bool    `json:"muted"`
}

// itemStore is the part of *gdata.Manager the store uses.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Store keeps settings and best scores between runs.
type Store struct {
	items itemStore
}

// OpenStore opens the gdata storage for appName.
func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return &Store{items: m}, nil
}

func (s *Store) loadJSON(key string, v any) (bool, error) {
	data, err := s.items.LoadItem(key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) saveJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", key, err)
	}
	if err := s.items.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// LoadSettings returns the saved settings, or nil when none were saved yet.
func (s *Store) LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	found, err := s.loadJSON(settingsKey, &settings)
	if err != nil || !found {
		return nil, err
	}
	return &settings, nil
}

func (s *Store) SaveSettings(settings *SavedSettings) error {
	return s.saveJSON(settingsKey, settings)
}

// SaveCurrentSettings stores the live audio configuration.
func (s *Store) SaveCurrentSettings() {
	if err := s.SaveSettings(&SavedSettings{SFXVolume: cfg.Audio.SFXVolume, Muted: cfg.Audio.Muted}); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

// ApplySavedSettings copies saved settings into the global configuration.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Audio.SFXVolume = saved.SFXVolume
	cfg.Audio.Muted = saved.Muted
}

// BestScore returns the best score recorded for a level, 0 if none.
func (s *Store) BestScore(level string) (int, error) {
	records := map[string]int{}
	if _, err := s.loadJSON(recordsKey, &records); err != nil {
		return 0, err
	}
	return records[level], nil
}

// RecordScore stores score for level if it beats the previous best and
// returns the best score after the update.
func (s *Store) RecordScore(level string, score int) (best int, improved bool, err error) {
	records := map[string]int{}
	if _, err := s.loadJSON(recordsKey, &records); err != nil {
		return 0, false, err
	}
	if prev, ok := records[level]; ok && prev >= score {
		return prev, false, nil
	}
	records[level] = score
	if err := s.saveJSON(recordsKey, records); err != nil {
		return 0, false, err
	}
	return score, true, nil
}
