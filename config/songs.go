package config

import (
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownSong     = errors.New("unknown song")
	ErrUnknownPart     = errors.New("unknown part")
	ErrInvalidRegistry = errors.New("invalid song registry")
)

// ConfigError reports a song/part lookup or validation failure.
type ConfigError struct {
	Song string
	Part string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Part != "" {
		return fmt.Sprintf("song %q part %q: %v", e.Song, e.Part, e.Err)
	}
	return fmt.Sprintf("song %q: %v", e.Song, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// TrackConfig is one audio stem of a level.
type TrackConfig struct {
	Key  string `yaml:"key"`
	Path string `yaml:"path"`
}

// LevelConfig describes everything the generic level scene needs to build a level.
type LevelConfig struct {
	Map          string        `yaml:"map"` // TMX with Ground and PlayerSpawn object groups
	Sky          string        `yaml:"sky"`
	Ground       string        `yaml:"ground"`
	SkyScroll    float64       `yaml:"sky_scroll"`    // px per frame
	GroundScroll float64       `yaml:"ground_scroll"` // px per frame
	Tracks       []TrackConfig `yaml:"tracks"`
}

// PartConfig is one playable part of a song.
type PartConfig struct {
	Key             string `yaml:"key"`
	DisplayName     string `yaml:"display_name"`
	SongMap         string `yaml:"song_map"`
	PlayerSprite    string `yaml:"player_sprite"`
	ControlledTrack string `yaml:"controlled_track"`
}

// SongConfig is one entry of the song registry.
type SongConfig struct {
	Key         string       `yaml:"key"`
	DisplayName string       `yaml:"display_name"`
	BPM         int          `yaml:"bpm"`
	Level       LevelConfig  `yaml:"level"`
	Parts       []PartConfig `yaml:"parts"`
}

// Part returns the part with the given key.
func (s SongConfig) Part(key string) (PartConfig, bool) {
	for _, p := range s.Parts {
		if p.Key == key {
			return p, true
		}
	}
	return PartConfig{}, false
}

// Track returns the level track with the given key.
func (l LevelConfig) Track(key string) (TrackConfig, bool) {
	for _, t := range l.Tracks {
		if t.Key == key {
			return t, true
		}
	}
	return TrackConfig{}, false
}

// SongRegistry is the read-only table of playable songs. Build it once with
// ParseSongRegistry and pass it by reference; lookups hand out copies.
type SongRegistry struct {
	songs map[string]SongConfig
	order []string
}

type registryFile struct {
	Songs []SongConfig `yaml:"songs"`
}

// ParseSongRegistry decodes and validates a YAML song registry.
func ParseSongRegistry(data []byte) (*SongRegistry, error) {
	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistry, err)
	}
	if len(file.Songs) == 0 {
		return nil, fmt.Errorf("%w: no songs", ErrInvalidRegistry)
	}

	r := &SongRegistry{songs: make(map[string]SongConfig, len(file.Songs))}
	for _, song := range file.Songs {
		if err := validateSong(song); err != nil {
			return nil, err
		}
		if _, dup := r.songs[song.Key]; dup {
			return nil, &ConfigError{Song: song.Key, Err: fmt.Errorf("%w: duplicate song key", ErrInvalidRegistry)}
		}
		r.songs[song.Key] = song
		r.order = append(r.order, song.Key)
	}
	return r, nil
}

func validateSong(song SongConfig) error {
	if song.Key == "" {
		return fmt.Errorf("%w: song without key", ErrInvalidRegistry)
	}
	if song.Level.Map == "" {
		return &ConfigError{Song: song.Key, Err: fmt.Errorf("%w: level map missing", ErrInvalidRegistry)}
	}
	if len(song.Parts) == 0 {
		return &ConfigError{Song: song.Key, Err: fmt.Errorf("%w: no parts", ErrInvalidRegistry)}
	}
	seen := make(map[string]bool, len(song.Parts))
	for _, part := range song.Parts {
		if part.Key == "" || seen[part.Key] {
			return &ConfigError{Song: song.Key, Part: part.Key, Err: fmt.Errorf("%w: empty or duplicate part key", ErrInvalidRegistry)}
		}
		seen[part.Key] = true
		if part.SongMap == "" {
			return &ConfigError{Song: song.Key, Part: part.Key, Err: fmt.Errorf("%w: song map missing", ErrInvalidRegistry)}
		}
		if part.ControlledTrack != "" {
			if _, ok := song.Level.Track(part.ControlledTrack); !ok {
				return &ConfigError{Song: song.Key, Part: part.Key, Err: fmt.Errorf("%w: controlled track %q not in level tracks", ErrInvalidRegistry, part.ControlledTrack)}
			}
		}
	}
	return nil
}

// Song looks up a song by key.
func (r *SongRegistry) Song(key string) (SongConfig, error) {
	song, ok := r.songs[key]
	if !ok {
		return SongConfig{}, &ConfigError{Song: key, Err: ErrUnknownSong}
	}
	return cloneSong(song), nil
}

// Lookup resolves a song/part pair. It fails with a *ConfigError wrapping
// ErrUnknownSong or ErrUnknownPart.
func (r *SongRegistry) Lookup(songKey, partKey string) (SongConfig, PartConfig, error) {
	song, err := r.Song(songKey)
	if err != nil {
		return SongConfig{}, PartConfig{}, err
	}
	part, ok := song.Part(partKey)
	if !ok {
		return SongConfig{}, PartConfig{}, &ConfigError{Song: songKey, Part: partKey, Err: ErrUnknownPart}
	}
	return song, part, nil
}

// Songs returns every song in registry order.
func (r *SongRegistry) Songs() []SongConfig {
	out := make([]SongConfig, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, cloneSong(r.songs[key]))
	}
	return out
}

func cloneSong(s SongConfig) SongConfig {
	s.Parts = slices.Clone(s.Parts)
	s.Level.Tracks = slices.Clone(s.Level.Tracks)
	return s
}
