package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRegistry = `
songs:
  - key: lucia
    display_name: Lucia
    bpm: 110
    level:
      map: levels/snow/snow.tmx
      sky: snow-mountain
      ground: bricks
      tracks:
        - key: soprano
          path: audio/lucia/soprano.ogg
        - key: alto
          path: audio/lucia/alto.ogg
    parts:
      - key: soprano
        display_name: Soprano
        song_map: songmaps/lucia/soprano.json
        controlled_track: soprano
      - key: alto
        display_name: Alto
        song_map: songmaps/lucia/alto.json
        controlled_track: alto
`

func TestParseSongRegistryLookup(t *testing.T) {
	r, err := ParseSongRegistry([]byte(testRegistry))
	require.NoError(t, err)

	song, part, err := r.Lookup("lucia", "alto")
	require.NoError(t, err)
	assert.Equal(t, "Lucia", song.DisplayName)
	assert.Equal(t, "songmaps/lucia/alto.json", part.SongMap)
	assert.Equal(t, "alto", part.ControlledTrack)

	songs := r.Songs()
	require.Len(t, songs, 1)
	assert.Len(t, songs[0].Parts, 2)
}

func TestLookupUnknownKeys(t *testing.T) {
	r, err := ParseSongRegistry([]byte(testRegistry))
	require.NoError(t, err)

	_, _, err = r.Lookup("nope", "soprano")
	assert.True(t, errors.Is(err, ErrUnknownSong))

	_, _, err = r.Lookup("lucia", "tenor")
	assert.True(t, errors.Is(err, ErrUnknownPart))

	var cerr *ConfigError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "lucia", cerr.Song)
	assert.Equal(t, "tenor", cerr.Part)
}

func TestRegistryHandsOutCopies(t *testing.T) {
	r, err := ParseSongRegistry([]byte(testRegistry))
	require.NoError(t, err)

	song, err := r.Song("lucia")
	require.NoError(t, err)
	song.Parts[0].SongMap = "mutated"
	song.Level.Tracks[0].Path = "mutated"

	again, err := r.Song("lucia")
	require.NoError(t, err)
	assert.Equal(t, "songmaps/lucia/soprano.json", again.Parts[0].SongMap)
	assert.Equal(t, "audio/lucia/soprano.ogg", again.Level.Tracks[0].Path)
}

func TestParseSongRegistryRejectsBadControlledTrack(t *testing.T) {
	bad := `
songs:
  - key: lucia
    level:
      map: levels/snow/snow.tmx
      tracks:
        - key: soprano
          path: a.ogg
    parts:
      - key: alto
        song_map: alto.json
        controlled_track: alto
`
	_, err := ParseSongRegistry([]byte(bad))
	assert.True(t, errors.Is(err, ErrInvalidRegistry))
}

func TestParseSongRegistryRejectsEmpty(t *testing.T) {
	_, err := ParseSongRegistry([]byte("songs: []"))
	assert.True(t, errors.Is(err, ErrInvalidRegistry))
}

func TestTuningApply(t *testing.T) {
	saved := Notes
	savedNet := Network
	t.Cleanup(func() {
		Notes = saved
		Network = savedNet
	})

	tuning, err := ParseTuning([]byte("note_speed: 250\nepilogue_ms: 1500\nscoring_url: http://example.test\n"))
	require.NoError(t, err)
	tuning.Apply()

	assert.Equal(t, 250.0, Notes.Speed)
	assert.Equal(t, 1500.0, Notes.EpilogueMs)
	assert.Equal(t, saved.PreRollMs, Notes.PreRollMs)
	assert.Equal(t, "http://example.test", Network.ScoringURL)
}

func TestParseTuningRejectsNonPositiveSpeed(t *testing.T) {
	_, err := ParseTuning([]byte("note_speed: 0"))
	assert.Error(t, err)
}
