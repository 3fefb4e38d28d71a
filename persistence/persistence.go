// Package persistence keeps the player's identity, settings and last song
// choice on disk through gdata.
package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	cfg "github.com/automoto/songrunner/config"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

const (
	identityKey  = "identity"
	settingsKey  = "settings"
	selectionKey = "selection"
)

// ErrNoIdentity means the player has not entered an email and name yet.
var ErrNoIdentity = errors.New("no saved player identity")

// ItemStore is the subset of *gdata.Manager the store uses.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Identity is sent with every run submission.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Validate trims the fields and rejects blanks.
func (id *Identity) Validate() error {
	id.Email = strings.TrimSpace(id.Email)
	id.Name = strings.TrimSpace(id.Name)
	if id.Email == "" || id.Name == "" {
		return errors.New("email and name required")
	}
	if !strings.Contains(id.Email, "@") {
		return fmt.Errorf("invalid email %q", id.Email)
	}
	return nil
}

// Settings represents the settings data stored on disk
type Settings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
}

func DefaultSettings() Settings {
	return Settings{
		MusicVolume: cfg.Audio.DefaultMusicVol,
		SFXVolume:   cfg.Audio.DefaultSFXVol,
	}
}

// Selection is the last song part played.
type Selection struct {
	Song string `json:"song"`
	Part string `json:"part"`
}

// Store reads and writes the saved items. A Store without a backing
// ItemStore keeps everything in memory for the session.
type Store struct {
	items  ItemStore
	memory map[string][]byte
}

// Open creates a gdata-backed store for appName. When the data directory is
// unavailable it logs and falls back to an in-memory store.
func Open(appName string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Warn().Err(err).Msg("could not initialize persistence, settings will not be saved")
		return NewStore(nil)
	}
	return NewStore(m)
}

func NewStore(items ItemStore) *Store {
	return &Store{items: items, memory: make(map[string][]byte)}
}

func (s *Store) load(key string, v any) (bool, error) {
	var data []byte
	if s.items == nil {
		data = s.memory[key]
	} else {
		var err error
		data, err = s.items.LoadItem(key)
		if err != nil {
			return false, fmt.Errorf("load %s: %w", key, err)
		}
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if s.items == nil {
		s.memory[key] = data
		return nil
	}
	if err := s.items.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Identity returns the saved identity or ErrNoIdentity.
func (s *Store) Identity() (Identity, error) {
	var id Identity
	ok, err := s.load(identityKey, &id)
	if err != nil {
		return Identity{}, err
	}
	if !ok || id.Validate() != nil {
		return Identity{}, ErrNoIdentity
	}
	return id, nil
}

func (s *Store) SaveIdentity(id Identity) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return s.save(identityKey, id)
}

// Settings returns the saved settings, or the defaults when none are saved
// or they cannot be read.
func (s *Store) Settings() Settings {
	settings := DefaultSettings()
	if _, err := s.load(settingsKey, &settings); err != nil {
		log.Warn().Err(err).Msg("could not load settings, using defaults")
		return DefaultSettings()
	}
	settings.MusicVolume = clamp01(settings.MusicVolume)
	settings.SFXVolume = clamp01(settings.SFXVolume)
	return settings
}

func (s *Store) SaveSettings(settings Settings) error {
	return s.save(settingsKey, settings)
}

// Selection returns the last song part played, if any.
func (s *Store) Selection() (Selection, bool) {
	var sel Selection
	ok, err := s.load(selectionKey, &sel)
	if err != nil {
		log.Warn().Err(err).Msg("could not load last selection")
		return Selection{}, false
	}
	return sel, ok && sel.Song != "" && sel.Part != ""
}

func (s *Store) SaveSelection(sel Selection) error {
	return s.save(selectionKey, sel)
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
