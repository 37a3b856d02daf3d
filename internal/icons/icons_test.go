package icons

import "testing"

func TestForStyle(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		want  Style
	}{
		{"nerd", StyleNerd, StyleNerd},
		{"unicode", StyleUnicode, StyleUnicode},
		{"ascii", StyleAscii, StyleAscii},
		{"unknown falls back to ascii", Style("fancy"), StyleAscii},
		{"empty falls back to ascii", Style(""), StyleAscii},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForStyle(tt.style); got.Style != tt.want {
				t.Errorf("ForStyle(%q).Style = %q, want %q", tt.style, got.Style, tt.want)
			}
		})
	}
}

func TestVolumeGlyphTiers(t *testing.T) {
	s := ForStyle(StyleAscii)

	tests := []struct {
		name  string
		level float64
		want  string
	}{
		{"exact zero is muted", 0, s.VolMuted},
		{"just above zero is low", 0.01, s.VolLow},
		{"below threshold is low", 0.49, s.VolLow},
		{"threshold is high", 0.5, s.VolHigh},
		{"above threshold is high", 1.7, s.VolHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Volume(tt.level); got != tt.want {
				t.Errorf("Volume(%v) = %q, want %q", tt.level, got, tt.want)
			}
		})
	}
}

func TestRich(t *testing.T) {
	if !ForStyle(StyleNerd).Rich() {
		t.Error("nerd set should be rich")
	}
	if ForStyle(StyleUnicode).Rich() {
		t.Error("unicode set should not be rich")
	}
	if ForStyle(StyleAscii).Rich() {
		t.Error("ascii set should not be rich")
	}
}

func TestNerdPartials(t *testing.T) {
	p := ForStyle(StyleNerd).Partials
	if len(p) != 8 {
		t.Fatalf("expected 8 partial cells, got %d", len(p))
	}
	if p[7] != "█" {
		t.Errorf("last partial should be a full cell, got %q", p[7])
	}
}
