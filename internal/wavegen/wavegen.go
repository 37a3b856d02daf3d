// Package wavegen generates test tones and encodes them as WAV data.
package wavegen

import (
	"fmt"
	"io"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// Generated tones are mono 16-bit at 48 kHz.
const sampleRate = beep.SampleRate(48000)

// Format is the stream format of generated tones.
var Format = beep.Format{SampleRate: sampleRate, NumChannels: 1, Precision: 2}

var speakerReady bool

// Tone builds a duration-limited sine source. amp is a linear gain;
// 1.0 leaves the wave untouched.
func Tone(freq float64, d time.Duration, amp float64) (beep.Streamer, error) {
	if freq <= 0 {
		return nil, fmt.Errorf("frequency must be positive, got %v", freq)
	}
	if d <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %v", d)
	}

	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("generate tone: %w", err)
	}

	var s beep.Streamer = beep.Take(sampleRate.N(d), sine)
	if amp != 1 {
		s = &effects.Gain{Streamer: s, Gain: amp - 1}
	}
	return s, nil
}

// Play renders a tone through the audio device and blocks until it ends.
func Play(s beep.Streamer) error {
	if !speakerReady {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			return fmt.Errorf("open audio output: %w", err)
		}
		speakerReady = true
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))
	<-done
	return nil
}

// Beep plays the 1 kHz, 300 ms convenience tone.
func Beep() error {
	s, err := Tone(1000, 300*time.Millisecond, 1)
	if err != nil {
		return err
	}
	return Play(s)
}

// EncodeWAV writes a tone as a 16-bit PCM WAV stream. The encoder needs
// to seek back and patch chunk sizes, so the file is assembled in memory
// before the single write to w.
func EncodeWAV(w io.Writer, s beep.Streamer) error {
	var buf seekBuffer
	if err := wav.Encode(&buf, s, Format); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	_, err := w.Write(buf.data)
	return err
}
