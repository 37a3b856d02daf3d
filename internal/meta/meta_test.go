package meta_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sounder-audio/sounder/internal/meta"
	"github.com/sounder-audio/sounder/internal/wavegen"
)

func TestFrameID(t *testing.T) {
	tests := []struct {
		key  string
		want string
		ok   bool
	}{
		{"title", "TIT2", true},
		{"artist", "TPE1", true},
		{"album", "TALB", true},
		{"year", "TDRC", true},
		{"track", "TRCK", true},
		{"nonsense", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := meta.FrameID(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeys_SortedAndUnique(t *testing.T) {
	keys := meta.Keys()
	require.NotEmpty(t, keys)
	assert.True(t, sort.StringsAreSorted(keys))

	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key %q", k)
		seen[k] = true
	}
}

func TestKeyFrames_MatchesKeys(t *testing.T) {
	keys := meta.Keys()
	pairs := meta.KeyFrames()
	require.Len(t, pairs, len(keys))
	for i, p := range pairs {
		assert.Equal(t, keys[i], p[0])
		assert.NotEmpty(t, p[1])
	}
}

func TestSetFrame_UnknownKey(t *testing.T) {
	_, err := meta.SetFrame("whatever.mp3", "nonsense", "x")
	assert.ErrorContains(t, err, "unknown tag key")
}

func TestSetFrame_RejectsNonMP3(t *testing.T) {
	_, err := meta.SetFrame("song.flac", "title", "x")
	assert.ErrorContains(t, err, "only supported for mp3")
}

func writeTestWAV(t *testing.T, d time.Duration) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	s, err := wavegen.Tone(440, d, 1)
	require.NoError(t, err)
	require.NoError(t, wavegen.EncodeWAV(f, s))
	return path
}

func TestRead_StreamProperties(t *testing.T) {
	path := writeTestWAV(t, 500*time.Millisecond)

	info, err := meta.Read(path)
	require.NoError(t, err)

	assert.Equal(t, "wav", info.Format)
	assert.Equal(t, 48000, info.SampleRate)
	assert.Equal(t, 1, info.Channels)
	assert.Equal(t, 500*time.Millisecond, info.Duration)
	assert.Greater(t, info.Size, int64(0))
	assert.Greater(t, info.Bitrate, 0)
}

func TestRead_TitleFallsBackToFileName(t *testing.T) {
	path := writeTestWAV(t, 100*time.Millisecond)

	info, err := meta.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "tone.wav", info.Title)
	assert.Equal(t, "tone.wav", info.Header())
}

func TestRead_MissingFile(t *testing.T) {
	_, err := meta.Read(filepath.Join(t.TempDir(), "absent.mp3"))
	assert.Error(t, err)
}

func TestHeader(t *testing.T) {
	tests := []struct {
		name string
		info meta.Info
		want string
	}{
		{"artist and title", meta.Info{Artist: "Aphex Twin", Title: "Flim"}, "Aphex Twin — Flim"},
		{"title only", meta.Info{Title: "track01.mp3"}, "track01.mp3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Header())
		})
	}
}
