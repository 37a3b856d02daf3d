// Package icons defines the glyph palettes used by the progress display.
// A Set is an immutable value selected once at startup and passed to the
// renderer; nothing here mutates shared state.
package icons

// Style identifies a glyph palette.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleAscii   Style = "ascii"
)

// LowVolumeThreshold splits the low and high volume glyph tiers.
// Exact zero is always the muted tier.
const LowVolumeThreshold = 0.5

// Set holds the glyphs for one style.
type Set struct {
	Style Style

	Play    string
	Pause   string
	Rewind  string
	Forward string
	Note    string

	BarFilled string
	BarEmpty  string
	Ellipsis  string

	VolMuted string
	VolLow   string
	VolHigh  string

	// Partials are the eight horizontal-fill cells (one-eighth to full)
	// used for sub-cell bar precision. Empty for non-rich sets.
	Partials []string
}

var (
	nerdSet = Set{
		Style:     StyleNerd,
		Play:      "", // nf-fa-play
		Pause:     "", // nf-fa-pause
		Rewind:    "", // nf-fa-backward
		Forward:   "", // nf-fa-forward
		Note:      "", // nf-fa-music
		BarFilled: "█",
		BarEmpty:  " ",
		Ellipsis:  "…",
		VolMuted:  "", // nf-fa-volume_off
		VolLow:    "", // nf-fa-volume_down
		VolHigh:   "", // nf-fa-volume_up
		Partials:  []string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"},
	}

	unicodeSet = Set{
		Style:     StyleUnicode,
		Play:      "▶",
		Pause:     "⏸",
		Rewind:    "⏪",
		Forward:   "⏩",
		Note:      "♪",
		BarFilled: "█",
		BarEmpty:  "─",
		Ellipsis:  "…",
		VolMuted:  "🔇",
		VolLow:    "🔉",
		VolHigh:   "🔊",
	}

	asciiSet = Set{
		Style:     StyleAscii,
		Play:      ">",
		Pause:     "|",
		Rewind:    "<<",
		Forward:   ">>",
		Note:      "*",
		BarFilled: "#",
		BarEmpty:  "-",
		Ellipsis:  "...",
		VolMuted:  "x",
		VolLow:    "v",
		VolHigh:   "V",
	}
)

// ForStyle returns the Set for a style, falling back to ascii.
func ForStyle(s Style) Set {
	switch s {
	case StyleNerd:
		return nerdSet
	case StyleUnicode:
		return unicodeSet
	default:
		return asciiSet
	}
}

// Volume returns the volume glyph for a linear gain value.
func (s Set) Volume(level float64) string {
	switch {
	case level == 0:
		return s.VolMuted
	case level < LowVolumeThreshold:
		return s.VolLow
	default:
		return s.VolHigh
	}
}

// Rich reports whether the set carries partial-fill cells.
func (s Set) Rich() bool {
	return len(s.Partials) == 8
}
