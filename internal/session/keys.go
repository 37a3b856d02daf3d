package session

import "io"

// Key is one decoded keyboard command.
type Key int

const (
	KeyNone Key = iota
	KeyToggle
	KeyBack
	KeyForward
	KeyVolumeUp
	KeyVolumeDown
	KeyMute
	KeyQuit
)

// ReadKeys decodes raw-mode keyboard input into Keys on a buffered
// channel. The reader goroutine exits and closes the channel when r
// fails; when the buffer is full keys are dropped rather than blocking
// the reader.
func ReadKeys(r io.Reader) <-chan Key {
	ch := make(chan Key, 8)
	go func() {
		defer close(ch)
		buf := make([]byte, 16)
		for {
			n, err := r.Read(buf)
			if err != nil {
				return
			}
			for _, k := range decodeKeys(buf[:n]) {
				select {
				case ch <- k:
				default:
				}
			}
		}
	}()
	return ch
}

// decodeKeys maps raw input bytes to commands. Arrow keys arrive as
// CSI sequences (ESC [ A..D); a bare escape quits.
func decodeKeys(b []byte) []Key {
	var keys []Key
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case 0x1b:
			if i+2 < len(b) && b[i+1] == '[' {
				switch b[i+2] {
				case 'A':
					keys = append(keys, KeyVolumeUp)
				case 'B':
					keys = append(keys, KeyVolumeDown)
				case 'C':
					keys = append(keys, KeyForward)
				case 'D':
					keys = append(keys, KeyBack)
				}
				i += 2
			} else {
				keys = append(keys, KeyQuit)
			}
		case ' ':
			keys = append(keys, KeyToggle)
		case 'l':
			keys = append(keys, KeyForward)
		case 'h':
			keys = append(keys, KeyBack)
		case 'k':
			keys = append(keys, KeyVolumeUp)
		case 'j':
			keys = append(keys, KeyVolumeDown)
		case 'm':
			keys = append(keys, KeyMute)
		case 'q', 0x03: // ctrl-c arrives as a raw byte in raw mode
			keys = append(keys, KeyQuit)
		}
	}
	return keys
}
