package wavegen

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s interface {
	Stream(samples [][2]float64) (int, bool)
}) int {
	t.Helper()
	var total int
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestTone_SampleCountMatchesDuration(t *testing.T) {
	s, err := Tone(440, 200*time.Millisecond, 1)
	require.NoError(t, err)

	got := drain(t, s)
	assert.Equal(t, Format.SampleRate.N(200*time.Millisecond), got)
}

func TestTone_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		freq float64
		dur  time.Duration
	}{
		{"zero frequency", 0, time.Second},
		{"negative frequency", -100, time.Second},
		{"zero duration", 440, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tone(tt.freq, tt.dur, 1)
			assert.Error(t, err)
		})
	}
}

func TestTone_AmplitudeScalesSamples(t *testing.T) {
	loud, err := Tone(440, 50*time.Millisecond, 1)
	require.NoError(t, err)
	quiet, err := Tone(440, 50*time.Millisecond, 0.5)
	require.NoError(t, err)

	lbuf := make([][2]float64, 64)
	qbuf := make([][2]float64, 64)
	loud.Stream(lbuf)
	quiet.Stream(qbuf)

	for i := range lbuf {
		assert.InDelta(t, lbuf[i][0]*0.5, qbuf[i][0], 1e-9)
	}
}

func TestEncodeWAV_Header(t *testing.T) {
	s, err := Tone(1000, 100*time.Millisecond, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeWAV(&buf, s))

	data := buf.Bytes()
	require.Greater(t, len(data), 44, "header plus samples")

	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
	assert.Equal(t, "fmt ", string(data[12:16]))

	channels := binary.LittleEndian.Uint16(data[22:24])
	rate := binary.LittleEndian.Uint32(data[24:28])
	bits := binary.LittleEndian.Uint16(data[34:36])
	assert.Equal(t, uint16(1), channels)
	assert.Equal(t, uint32(48000), rate)
	assert.Equal(t, uint16(16), bits)
}

func TestSeekBuffer(t *testing.T) {
	var b seekBuffer

	n, err := b.Write([]byte("abcdef"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	pos, err := b.Seek(0, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)

	// Overwrite in place must not truncate.
	_, err = b.Write([]byte("XY"))
	require.NoError(t, err)
	assert.Equal(t, "XYcdef", string(b.data))

	pos, err = b.Seek(-1, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(5), pos)

	_, err = b.Seek(-10, io.SeekStart)
	assert.Error(t, err)
}
