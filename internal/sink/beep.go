package sink

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// Supported file extensions.
const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
	extOGG  = ".ogg"
)

var speakerReady bool

// Stream is the beep-backed Sink implementation.
type Stream struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume

	done    chan struct{}
	started bool
	stopped bool
	lastPos time.Duration
}

var _ Sink = (*Stream)(nil)

// Open decodes path and prepares the audio device for it.
func Open(path string) (*Stream, error) {
	ext := strings.ToLower(filepath.Ext(path))

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case extMP3:
		streamer, format, err = mp3.Decode(f)
	case extFLAC:
		streamer, format, err = flac.Decode(f)
	case extWAV:
		streamer, format, err = wav.Decode(f)
	case extOGG:
		streamer, format, err = vorbis.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported format: %s", ext)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	if !speakerReady {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			streamer.Close()
			f.Close()
			return nil, fmt.Errorf("open audio output: %w", err)
		}
		speakerReady = true
	}

	ctrl := &beep.Ctrl{Streamer: streamer}
	vol := &effects.Volume{Streamer: ctrl, Base: 2}

	return &Stream{
		file:     f,
		streamer: streamer,
		format:   format,
		ctrl:     ctrl,
		volume:   vol,
		done:     make(chan struct{}),
	}, nil
}

// Play starts playback, or resumes it after Pause.
func (s *Stream) Play() {
	if s.stopped {
		return
	}
	if s.started {
		speaker.Lock()
		s.ctrl.Paused = false
		speaker.Unlock()
		return
	}
	s.started = true
	speaker.Play(beep.Seq(s.volume, beep.Callback(func() {
		close(s.done)
	})))
}

func (s *Stream) Pause() {
	if s.stopped {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = true
	speaker.Unlock()
}

// Stop halts playback and releases the stream and file.
func (s *Stream) Stop() {
	if s.stopped {
		return
	}
	s.lastPos = s.Position()
	s.stopped = true

	speaker.Clear()

	s.streamer.Close()
	s.file.Close()

	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

// SetVolume applies a linear gain in [0, VolumeMax]. beep's volume effect
// is exponential (base 2), so the gain maps through log2; zero gain uses
// the effect's silent switch instead of a -inf exponent.
func (s *Stream) SetVolume(level float64) {
	level = math.Min(math.Max(level, 0), VolumeMax)

	speaker.Lock()
	if level == 0 {
		s.volume.Silent = true
	} else {
		s.volume.Silent = false
		s.volume.Volume = math.Log2(level)
	}
	speaker.Unlock()
}

func (s *Stream) Position() time.Duration {
	if s.stopped {
		return s.lastPos
	}
	speaker.Lock()
	pos := s.format.SampleRate.D(s.streamer.Position())
	speaker.Unlock()
	return pos
}

// TrySeek moves to an absolute stream position, clamped to the decoded
// length when the decoder knows it.
func (s *Stream) TrySeek(pos time.Duration) error {
	if s.stopped {
		return nil
	}
	n := s.format.SampleRate.N(pos)
	n = max(n, 0)
	if length := s.streamer.Len(); length > 0 {
		n = min(n, length-1)
	}

	speaker.Lock()
	err := s.streamer.Seek(n)
	speaker.Unlock()
	return err
}

func (s *Stream) Empty() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// TotalDuration reports the decoded stream length. Streaming decoders that
// cannot size the bitstream report 0.
func (s *Stream) TotalDuration() time.Duration {
	length := s.streamer.Len()
	if length <= 0 {
		return 0
	}
	return s.format.SampleRate.D(length)
}
