package session

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeKeys(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []Key
	}{
		{"space toggles", []byte(" "), []Key{KeyToggle}},
		{"vim seek keys", []byte("hl"), []Key{KeyBack, KeyForward}},
		{"vim volume keys", []byte("kj"), []Key{KeyVolumeUp, KeyVolumeDown}},
		{"mute", []byte("m"), []Key{KeyMute}},
		{"quit letter", []byte("q"), []Key{KeyQuit}},
		{"ctrl-c quits", []byte{0x03}, []Key{KeyQuit}},
		{"bare escape quits", []byte{0x1b}, []Key{KeyQuit}},
		{"up arrow", []byte{0x1b, '[', 'A'}, []Key{KeyVolumeUp}},
		{"down arrow", []byte{0x1b, '[', 'B'}, []Key{KeyVolumeDown}},
		{"right arrow", []byte{0x1b, '[', 'C'}, []Key{KeyForward}},
		{"left arrow", []byte{0x1b, '[', 'D'}, []Key{KeyBack}},
		{"arrow then letter", []byte{0x1b, '[', 'C', 'm'}, []Key{KeyForward, KeyMute}},
		{"unknown bytes ignored", []byte("zx9"), nil},
		{"unknown csi ignored", []byte{0x1b, '[', 'Z'}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeKeys(tt.input))
		})
	}
}

func TestReadKeys_DecodesAndCloses(t *testing.T) {
	ch := ReadKeys(bytes.NewReader([]byte("q")))

	var got []Key
	for k := range ch {
		got = append(got, k)
	}
	assert.Equal(t, []Key{KeyQuit}, got)
}
