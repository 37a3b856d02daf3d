package sink

import "time"

// Mock is a scriptable test double for Sink.
type Mock struct {
	pos       time.Duration
	positions []time.Duration
	total     time.Duration
	empty     bool
	seekErr   error

	playing    bool
	PlayCalls  int
	PauseCalls int
	StopCalls  int
	Volumes    []float64
	Seeks      []time.Duration
}

var _ Sink = (*Mock)(nil)

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Play() {
	m.PlayCalls++
	m.playing = true
}

func (m *Mock) Pause() {
	m.PauseCalls++
	m.playing = false
}

func (m *Mock) Stop() {
	m.StopCalls++
	m.playing = false
}

func (m *Mock) SetVolume(level float64) {
	m.Volumes = append(m.Volumes, level)
}

// Position pops the next scripted position if any, else returns the last
// value set.
func (m *Mock) Position() time.Duration {
	if len(m.positions) > 0 {
		m.pos = m.positions[0]
		m.positions = m.positions[1:]
	}
	return m.pos
}

// TrySeek succeeds unless a seek error is scripted. A successful seek moves
// the reported position, like the real device.
func (m *Mock) TrySeek(pos time.Duration) error {
	m.Seeks = append(m.Seeks, pos)
	if m.seekErr != nil {
		return m.seekErr
	}
	m.pos = pos
	m.positions = nil
	return nil
}

func (m *Mock) Empty() bool { return m.empty }

func (m *Mock) TotalDuration() time.Duration { return m.total }

// Test helpers

func (m *Mock) SetPosition(d time.Duration) { m.pos = d }

// ScriptPositions queues position values returned by successive Position calls.
func (m *Mock) ScriptPositions(ds ...time.Duration) { m.positions = ds }

func (m *Mock) SetEmpty(v bool) { m.empty = v }

func (m *Mock) SetSeekErr(err error) { m.seekErr = err }

func (m *Mock) SetTotalDuration(d time.Duration) { m.total = d }

func (m *Mock) Playing() bool { return m.playing }
