// Package session drives interactive playback. A Session owns the audio
// sink for its lifetime and runs a single cooperative loop: read the
// device position, poll the keyboard, apply transitions, render at a
// bounded rate. No state is shared with other goroutines; the only
// concurrent piece is the key reader feeding a channel.
package session

import (
	"context"
	"io"
	"math"
	"os"
	"time"

	"github.com/sounder-audio/sounder/internal/icons"
	"github.com/sounder-audio/sounder/internal/progress"
	"github.com/sounder-audio/sounder/internal/sink"
)

const (
	// ControlsThreshold is the shortest track that gets keyboard
	// controls; anything shorter just plays out.
	ControlsThreshold = 60 * time.Second

	// TickInterval bounds keyboard-polling CPU usage; RenderInterval
	// caps redraws between state changes.
	TickInterval   = 200 * time.Millisecond
	RenderInterval = 500 * time.Millisecond

	// VolumeStep is one up/down key press worth of linear gain.
	VolumeStep = 0.05

	DefaultSeekStep = 5 * time.Second
)

// Terminal is the scoped terminal state a session runs under. termctl.Guard
// is the real implementation.
type Terminal interface {
	Acquire(raw bool) error
	Release()
	Width() int
}

type phase int

const (
	phaseStarting phase = iota
	phaseRunning
	phaseDraining
	phaseStopped
)

// Options configures a session. Zero values fall back to sensible
// defaults, except Volume which is taken literally.
type Options struct {
	Total    time.Duration
	Header   string
	Icons    icons.Set
	Volume   float64
	Quiet    bool
	SeekStep time.Duration

	Out      io.Writer // progress target, default os.Stderr
	Terminal Terminal
	Input    io.Reader  // raw keyboard source, default os.Stdin
	Keys     <-chan Key // pre-decoded keys; overrides Input

	Now   func() time.Time
	Sleep func(time.Duration)
}

// Session is the playback state machine.
type Session struct {
	sink     sink.Sink
	total    time.Duration
	header   string
	icons    icons.Set
	quiet    bool
	seekStep time.Duration

	out   io.Writer
	term  Terminal
	input io.Reader
	keys  <-chan Key
	now   func() time.Time
	sleep func(time.Duration)

	phase        phase
	elapsed      time.Duration
	paused       bool
	volume       float64
	preMute      float64
	interactive  bool
	renderedOnce bool
}

// New builds a session around a sink. The sink is owned by the session
// from here on.
func New(snk sink.Sink, opts Options) *Session {
	s := &Session{
		sink:     snk,
		total:    opts.Total,
		header:   opts.Header,
		icons:    opts.Icons,
		quiet:    opts.Quiet,
		seekStep: opts.SeekStep,
		out:      opts.Out,
		term:     opts.Terminal,
		input:    opts.Input,
		keys:     opts.Keys,
		now:      opts.Now,
		sleep:    opts.Sleep,
		phase:    phaseStarting,
	}
	if s.seekStep <= 0 {
		s.seekStep = DefaultSeekStep
	}
	if s.out == nil {
		s.out = os.Stderr
	}
	if s.term == nil {
		s.term = noopTerminal{}
	}
	if s.input == nil {
		s.input = os.Stdin
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.sleep == nil {
		s.sleep = time.Sleep
	}

	s.volume = math.Min(math.Max(opts.Volume, 0), sink.VolumeMax)
	s.preMute = s.volume
	if s.preMute == 0 {
		s.preMute = VolumeStep
	}
	return s
}

// Interactive reports whether this session accepts keyboard input. Valid
// after Run has started; decided once from the initial total.
func (s *Session) Interactive() bool { return s.interactive }

// Run plays the stream until it completes, the user quits, or ctx is
// cancelled. Cancellation propagates as the context's error. The terminal
// is restored on every exit path.
func (s *Session) Run(ctx context.Context) error {
	s.interactive = s.total >= ControlsThreshold && !s.quiet
	s.phase = phaseRunning

	if !s.quiet {
		if err := s.term.Acquire(s.interactive); err != nil {
			s.sink.Stop()
			return err
		}
		defer s.term.Release()
	}
	if s.interactive && s.keys == nil {
		s.keys = ReadKeys(s.input)
	}

	s.sink.SetVolume(s.volume)
	s.sink.Play()

	err := s.loop(ctx)

	s.phase = phaseDraining
	s.render()
	s.sink.Stop()
	s.phase = phaseStopped
	return err
}

func (s *Session) loop(ctx context.Context) error {
	var lastRender time.Time

	for s.phase == phaseRunning {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.observePosition()

		dirty := false
		if s.interactive {
			if k, ok := s.pollKey(); ok {
				dirty = s.apply(k)
			}
		}

		if s.phase == phaseRunning && (s.elapsed >= s.total || s.sink.Empty()) {
			s.phase = phaseDraining
		}
		if s.phase != phaseRunning {
			return nil
		}

		if dirty || !s.renderedOnce || s.now().Sub(lastRender) >= RenderInterval {
			s.render()
			lastRender = s.now()
		}

		s.sleep(TickInterval)
	}
	return nil
}

// observePosition re-reads the device position so drift between the wall
// clock and the audio engine cannot accumulate. Reports past the total
// are clamped, never propagated.
func (s *Session) observePosition() {
	pos := s.sink.Position()
	if pos < 0 {
		pos = 0
	}
	if pos > s.total {
		pos = s.total
	}
	s.elapsed = pos
}

// pollKey is a zero-timeout check for one pending keyboard event.
func (s *Session) pollKey() (Key, bool) {
	select {
	case k, ok := <-s.keys:
		if !ok {
			return KeyNone, false
		}
		return k, true
	default:
		return KeyNone, false
	}
}

// apply runs one transition. It reports whether the display needs an
// immediate redraw. Every sink mutation happens here, in the same tick
// the transition was decided.
func (s *Session) apply(k Key) bool {
	switch k {
	case KeyToggle:
		s.paused = !s.paused
		if s.paused {
			s.sink.Pause()
		} else {
			s.sink.Play()
		}
	case KeyForward:
		s.seekTo(s.elapsed + s.seekStep)
	case KeyBack:
		s.seekTo(s.elapsed - s.seekStep)
	case KeyVolumeUp:
		s.stepVolume(VolumeStep)
	case KeyVolumeDown:
		s.stepVolume(-VolumeStep)
	case KeyMute:
		if s.volume > 0 {
			s.preMute = s.volume
			s.volume = 0
			s.sink.SetVolume(0)
		} else {
			s.setVolume(math.Max(s.preMute, VolumeStep))
		}
	case KeyQuit:
		s.sink.Stop()
		s.phase = phaseDraining
	default:
		return false
	}
	return true
}

// seekTo clamps the target and attempts the seek; a rejected seek leaves
// elapsed untouched and the loop carries on.
func (s *Session) seekTo(target time.Duration) {
	if target < 0 {
		target = 0
	}
	if target > s.total {
		target = s.total
	}
	if err := s.sink.TrySeek(target); err == nil {
		s.elapsed = target
	}
}

// stepVolume moves the volume by one step in percent space, so repeated
// presses land on exact multiples instead of drifting.
func (s *Session) stepVolume(delta float64) {
	v := (math.Round(s.volume*100) + math.Round(delta*100)) / 100
	s.setVolume(v)
}

func (s *Session) setVolume(v float64) {
	v = math.Min(math.Max(v, 0), sink.VolumeMax)
	s.volume = v
	if v > 0 {
		s.preMute = v
	}
	s.sink.SetVolume(v)
}

// render draws one frame. Write failures are swallowed: a dropped frame
// must never abort playback.
func (s *Session) render() {
	if s.quiet {
		return
	}
	_ = progress.Render(s.out, progress.Frame{
		Elapsed:     s.elapsed,
		Total:       s.total,
		Paused:      s.paused,
		Volume:      s.volume,
		Interactive: s.interactive,
		Header:      s.header,
		First:       !s.renderedOnce,
		Width:       s.term.Width(),
		Icons:       s.icons,
	})
	s.renderedOnce = true
}

type noopTerminal struct{}

func (noopTerminal) Acquire(bool) error { return nil }
func (noopTerminal) Release()           {}
func (noopTerminal) Width() int         { return 0 }
