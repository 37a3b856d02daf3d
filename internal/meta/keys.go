package meta

// frameKeys maps normalized, lowercase key names to ID3v2.4 text frame
// IDs. The same key names the `meta` output uses. Kept sorted so listing
// iterates in stable alphabetical order.
var frameKeys = []struct {
	Name    string
	FrameID string
}{
	{"album", "TALB"},
	{"albumartist", "TPE2"},
	{"artist", "TPE1"},
	{"bpm", "TBPM"},
	{"composer", "TCOM"},
	{"conductor", "TPE3"},
	{"copyright", "TCOP"},
	{"date", "TDRC"},
	{"discnumber", "TPOS"},
	{"encodedby", "TENC"},
	{"genre", "TCON"},
	{"grouping", "TIT1"},
	{"initialkey", "TKEY"},
	{"isrc", "TSRC"},
	{"label", "TPUB"},
	{"language", "TLAN"},
	{"lyricist", "TEXT"},
	{"mood", "TMOO"},
	{"originalalbum", "TOAL"},
	{"originalartist", "TOPE"},
	{"publisher", "TPUB"},
	{"remixer", "TPE4"},
	{"subtitle", "TIT3"},
	{"title", "TIT2"},
	{"track", "TRCK"},
	{"year", "TDRC"},
}

// FrameID resolves a normalized key name to its ID3 frame ID.
func FrameID(name string) (string, bool) {
	for _, k := range frameKeys {
		if k.Name == name {
			return k.FrameID, true
		}
	}
	return "", false
}

// Keys lists the supported key names in stable order.
func Keys() []string {
	names := make([]string, len(frameKeys))
	for i, k := range frameKeys {
		names[i] = k.Name
	}
	return names
}

// KeyFrames returns (name, frame ID) pairs in stable order, for the
// `meta --all` listing.
func KeyFrames() [][2]string {
	out := make([][2]string, len(frameKeys))
	for i, k := range frameKeys {
		out[i] = [2]string{k.Name, k.FrameID}
	}
	return out
}
