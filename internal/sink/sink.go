// Package sink provides the audio output this tool plays through: an
// exclusive, seekable, volume-controllable handle over a decoded stream.
package sink

import "time"

// VolumeMax is the upper bound for the linear gain applied to a stream.
const VolumeMax = 2.0

// Sink is the playback handle owned by a session for its lifetime.
type Sink interface {
	// Play starts or resumes playback.
	Play()
	// Pause suspends playback without releasing the stream.
	Pause()
	// Stop ends playback and releases the underlying stream. Safe to call
	// more than once.
	Stop()
	// SetVolume applies a linear gain in [0, VolumeMax].
	SetVolume(level float64)
	// Position reports the stream position as played by the audio engine.
	Position() time.Duration
	// TrySeek moves to an absolute position. A failed seek leaves the
	// stream where it was.
	TrySeek(pos time.Duration) error
	// Empty reports whether the stream has been exhausted.
	Empty() bool
	// TotalDuration is the decoder's length hint, 0 when unknown.
	TotalDuration() time.Duration
}
