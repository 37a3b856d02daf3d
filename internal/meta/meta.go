// Package meta reads and writes audio file tag metadata, and probes the
// stream facts (duration, sample rate, channels) the tags cannot provide.
package meta

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
)

// Info is everything `meta` reports about one file.
type Info struct {
	Path   string
	Size   int64
	Format string

	// Stream properties from a decode probe. Duration is 0 when the
	// decoder cannot size the bitstream.
	Duration   time.Duration
	SampleRate int
	Channels   int
	Bitrate    int // kbit/s, approximated from size over duration

	Title       string
	Artist      string
	AlbumArtist string
	Album       string
	Genre       string
	Composer    string
	Comment     string
	Year        int
	Track       int
	TotalTracks int
	Disc        int
	TotalDiscs  int
}

// Read collects tag metadata and stream properties for path. A file
// without tags is not an error; the title falls back to the file name.
func Read(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info := &Info{
		Path:   path,
		Format: strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
	}
	if st, err := f.Stat(); err == nil {
		info.Size = st.Size()
	}

	if m, err := tag.ReadFrom(f); err == nil {
		info.Title = m.Title()
		info.Artist = m.Artist()
		info.AlbumArtist = m.AlbumArtist()
		info.Album = m.Album()
		info.Genre = m.Genre()
		info.Composer = m.Composer()
		info.Comment = m.Comment()
		info.Year = m.Year()
		info.Track, info.TotalTracks = m.Track()
		info.Disc, info.TotalDiscs = m.Disc()
	}
	if info.Title == "" {
		info.Title = filepath.Base(path)
	}

	if err := probeStream(path, info); err != nil {
		return nil, err
	}
	if info.Duration > 0 {
		info.Bitrate = int(float64(info.Size*8) / info.Duration.Seconds() / 1000)
	}
	return info, nil
}

// Header is the display line for the player: "artist — title", or just
// the title when the artist is unknown.
func (i *Info) Header() string {
	if i.Artist == "" {
		return i.Title
	}
	return i.Artist + " — " + i.Title
}
