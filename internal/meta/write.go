package meta

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
)

// SetFrame writes one text frame to an MP3 file and returns the re-read
// metadata so the caller sees the file as it now is.
func SetFrame(path, key, value string) (*Info, error) {
	id, ok := FrameID(strings.ToLower(strings.TrimSpace(key)))
	if !ok {
		return nil, fmt.Errorf("unknown tag key %q", key)
	}
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".mp3" {
		return nil, fmt.Errorf("tag writing is only supported for mp3 files, not %s", ext)
	}

	tg, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("open tags: %w", err)
	}

	tg.SetVersion(4)
	tg.SetDefaultEncoding(id3v2.EncodingUTF8)
	tg.AddTextFrame(id, id3v2.EncodingUTF8, value)

	if err := tg.Save(); err != nil {
		tg.Close()
		return nil, fmt.Errorf("write tags: %w", err)
	}
	if err := tg.Close(); err != nil {
		return nil, fmt.Errorf("close tags: %w", err)
	}

	return Read(path)
}
