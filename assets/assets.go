package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/shared/leveldata"
	"github.com/automoto/songrunner/shared/songmap"
	"github.com/rs/zerolog/log"
)

// RegistryPath is where the song registry lives inside the content tree.
const RegistryPath = "songs/registry.yaml"

var (
	//go:embed all:songs all:songmaps all:levels all:audio
	contentFS embed.FS

	root fs.FS = contentFS
)

// UseDir makes every loader read from dir on disk instead of the embedded
// content. The directory must have the same layout as assets/.
func UseDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("asset dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("asset dir %s is not a directory", dir)
	}
	root = os.DirFS(dir)
	log.Info().Str("dir", dir).Msg("loading assets from disk")
	return nil
}

// FS returns the active content tree.
func FS() fs.FS {
	return root
}

// LoadRegistry reads and validates the song registry.
func LoadRegistry() (*config.SongRegistry, error) {
	data, err := fs.ReadFile(root, RegistryPath)
	if err != nil {
		return nil, fmt.Errorf("read song registry: %w", err)
	}
	return config.ParseSongRegistry(data)
}

// LoadSongMap reads the song map of a part.
func LoadSongMap(song config.SongConfig, part config.PartConfig) (*songmap.SongMap, error) {
	m, err := songmap.Load(root, part.SongMap)
	if err != nil {
		return nil, &config.ConfigError{Song: song.Key, Part: part.Key, Err: err}
	}
	return m, nil
}

// LoadGeometry reads the ground and spawn point of a song's level map.
func LoadGeometry(song config.SongConfig) (*leveldata.LevelGeometry, error) {
	geom, err := leveldata.LoadGeometry(root, song.Level.Map)
	if err != nil {
		return nil, &config.ConfigError{Song: song.Key, Err: err}
	}
	return geom, nil
}
