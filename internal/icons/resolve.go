package icons

import (
	"os"
	"runtime"
	"strings"
)

// EnvVar overrides the icon style when no explicit flag is given.
const EnvVar = "SOUNDER_ICONS"

// Resolve picks the glyph set for this session.
// Priority: explicit flag > SOUNDER_ICONS > terminal probe > ascii.
func Resolve(explicit string) Set {
	if s, ok := parseStyle(explicit); ok {
		return ForStyle(s)
	}
	if s, ok := parseStyle(os.Getenv(EnvVar)); ok {
		return ForStyle(s)
	}
	return ForStyle(probe())
}

func parseStyle(v string) (Style, bool) {
	switch Style(strings.ToLower(strings.TrimSpace(v))) {
	case StyleNerd:
		return StyleNerd, true
	case StyleUnicode:
		return StyleUnicode, true
	case StyleAscii:
		return StyleAscii, true
	default:
		return "", false
	}
}

// probe decides whether the terminal can display the unicode set.
// On macOS the terminal emulator identifies itself through TERM_PROGRAM;
// elsewhere the locale charset is the only reliable signal. Anything
// inconclusive falls back to ascii.
func probe() Style {
	if runtime.GOOS == "darwin" {
		switch os.Getenv("TERM_PROGRAM") {
		case "iTerm.app", "Apple_Terminal", "WezTerm", "kitty", "ghostty":
			return StyleUnicode
		}
		return StyleAscii
	}
	for _, name := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := strings.ToUpper(os.Getenv(name))
		if v == "" {
			continue
		}
		if strings.Contains(v, "UTF-8") || strings.Contains(v, "UTF8") {
			return StyleUnicode
		}
		return StyleAscii
	}
	return StyleAscii
}
