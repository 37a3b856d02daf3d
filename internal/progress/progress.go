// Package progress renders the one-line playback display. Rendering is
// stateless: every call rebuilds the line from the frame values and writes
// it in a single buffered write.
package progress

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/sounder-audio/sounder/internal/icons"
)

const (
	// MinWidth is the narrowest terminal worth rendering into; below it
	// the frame is dropped rather than wrapped.
	MinWidth = 40

	minBarWidth = 10
	maxBarWidth = 60
	minVolWidth = 5

	clearLine = "\r\x1b[2K"
)

// Frame carries everything one render needs. Frames have no identity; the
// session rebuilds one per render call.
type Frame struct {
	Elapsed     time.Duration
	Total       time.Duration
	Paused      bool
	Volume      float64
	Interactive bool
	Header      string
	First       bool
	Width       int
	Icons       icons.Set
}

// Render writes one frame: an optional header line on the first render,
// then the progress line, rewritten in place on later calls.
func Render(w io.Writer, f Frame) error {
	if f.Width < MinWidth {
		return nil
	}

	var buf bytes.Buffer
	if f.First && f.Header != "" {
		buf.WriteString(clearLine)
		buf.WriteString(headerLine(f.Icons, f.Header, f.Width))
		buf.WriteString("\n")
	}
	buf.WriteString(clearLine)
	buf.WriteString(line(f))

	_, err := w.Write(buf.Bytes())
	return err
}

// headerLine prepends the now-playing marker and truncates by display
// width, so wide characters count as two columns.
func headerLine(ic icons.Set, header string, width int) string {
	s := ic.Note + " " + header
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ic.Ellipsis)
}

func line(f Frame) string {
	ic := f.Icons
	ratio := Ratio(f.Elapsed, f.Total)

	status := ic.Play
	if f.Paused {
		status = ic.Pause
	}

	left := status + " " + Clock(f.Elapsed) + " "
	mid := fmt.Sprintf(" %3d%% %s", int(math.Round(ratio*100)), Clock(f.Total))
	volHead := "  " + ic.Volume(f.Volume) + " "
	volTail := fmt.Sprintf(" %d%%", int(math.Round(f.Volume*100)))

	fixed := runewidth.StringWidth(left) + runewidth.StringWidth(mid)
	volFixed := runewidth.StringWidth(volHead) + runewidth.StringWidth(volTail)

	// The bars win over the key legend: try the full legend, then the
	// compact one, then none.
	var (
		hints       string
		mainW, volW int
	)
	for _, h := range hintTexts(f, ic) {
		mainW, volW = barWidths(f.Width - fixed - volFixed - runewidth.StringWidth(h))
		if mainW > 0 {
			hints = h
			break
		}
	}
	if mainW == 0 {
		// Still too narrow: drop the volume section entirely.
		volHead, volTail = "", ""
		mainW = clampInt(f.Width-fixed, minBarWidth, maxBarWidth)
		volW = 0
	}

	var sb strings.Builder
	sb.WriteString(left)
	sb.WriteString(Bar(ic, ratio, mainW))
	sb.WriteString(mid)
	if volW > 0 {
		sb.WriteString(volHead)
		sb.WriteString(Bar(ic, f.Volume/2, volW))
		sb.WriteString(volTail)
	}
	sb.WriteString(hints)
	return sb.String()
}

// barWidths splits the available columns between the main and volume bars.
// The volume bar gets roughly a third of the main bar with a floor of
// five cells; the pair never exceeds avail. Returns zeros when even the
// minimum layout does not fit.
func barWidths(avail int) (mainW, volW int) {
	if avail < minBarWidth+minVolWidth {
		return 0, 0
	}
	mainW = clampInt(avail*3/4, minBarWidth, maxBarWidth)
	volW = max(mainW/3, minVolWidth)
	if mainW+volW > avail {
		mainW = clampInt(avail-volW, minBarWidth, maxBarWidth)
	}
	return mainW, volW
}

// Bar renders a fill bar of exactly width cells. Rich sets use floor plus
// one eighth-block partial cell for the remainder; the others round.
func Bar(ic icons.Set, ratio float64, width int) string {
	if width <= 0 {
		return ""
	}
	ratio = math.Min(math.Max(ratio, 0), 1)

	var sb strings.Builder
	if ic.Rich() {
		fill := ratio * float64(width)
		full := int(math.Floor(fill))
		full = min(full, width)
		rest := width - full

		for range full {
			sb.WriteString(ic.BarFilled)
		}
		// The remainder maps to the nearest of eight fill levels; below
		// one sixteenth of a cell it renders as empty.
		if frac := fill - float64(full); rest > 0 {
			if idx := int(math.Round(frac*8)) - 1; idx >= 0 {
				sb.WriteString(ic.Partials[min(idx, 7)])
				rest--
			}
		}
		for range rest {
			sb.WriteString(ic.BarEmpty)
		}
		return sb.String()
	}

	full := int(math.Round(ratio * float64(width)))
	full = min(full, width)
	for range full {
		sb.WriteString(ic.BarFilled)
	}
	for range width - full {
		sb.WriteString(ic.BarEmpty)
	}
	return sb.String()
}

// hintTexts returns the key legend candidates from widest to none, for
// interactive sessions only. The play/pause label is padded so toggling
// does not resize the bars.
func hintTexts(f Frame, ic icons.Set) []string {
	if !f.Interactive {
		return []string{""}
	}
	label := "pause"
	if f.Paused {
		label = "play "
	}
	return []string{
		fmt.Sprintf("  [space %s  %s/%s seek  j/k vol  m mute  q quit]", label, ic.Rewind, ic.Forward),
		fmt.Sprintf("  [space %s h/l j/k m q]", label),
		"",
	}
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// Ratio is elapsed over total, clamped to [0, 1]. A zero total is 0, not
// a division fault.
func Ratio(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	r := float64(elapsed) / float64(total)
	return math.Min(math.Max(r, 0), 1)
}

// Clock formats a duration as m:ss, or h:mm:ss from one hour up.
func Clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	s := int(d/time.Second) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
