package session

import "time"

// FallbackTotal bounds a session when no source can size the stream: the
// user can still quit, and the caller's signal handling can intervene.
const FallbackTotal = time.Hour

// ResolveTotal picks the authoritative playback length: an explicit
// override wins, then the decoder's report, then the container header.
// A zero-valued candidate counts as absent, not as a zero-length track.
func ResolveTotal(override, decoded, header time.Duration) time.Duration {
	for _, d := range [...]time.Duration{override, decoded, header} {
		if d > 0 {
			return d
		}
	}
	return FallbackTotal
}
