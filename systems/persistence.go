package systems

import (
	"encoding/json"
	"log"
	"strconv"

	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume float64 `json:"sfxVolume"`
	Muted     bool    `json:"muted"`
}

const (
	settingsKey  = "settings"
	bestScoreKey = "bestScore"
)

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings and score storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "flappygopher",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettingsGlobal applies settings before the first scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.SFXVolume > 0 {
		globalSFXVolume = saved.SFXVolume
	}
	globalMuted = saved.Muted
}

// ParseBestScore decodes a stored best score. Missing or malformed data
// reads as zero.
func ParseBestScore(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	n, err := strconv.Atoi(string(data))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// GdataScoreStore keeps the best score in the gdata store. It reads 0
// whenever the store is unavailable.
type GdataScoreStore struct{}

func (GdataScoreStore) BestScore() int {
	if !gdataInitialized || gdataManager == nil {
		return 0
	}
	data, err := gdataManager.LoadItem(bestScoreKey)
	if err != nil {
		log.Printf("Warning: Could not load best score: %v", err)
		return 0
	}
	return ParseBestScore(data)
}

func (GdataScoreStore) SaveBestScore(score int) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	return gdataManager.SaveItem(bestScoreKey, []byte(strconv.Itoa(score)))
}
