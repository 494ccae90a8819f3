package assets

import (
	"embed"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed sounds/*.wav
var assetsFS embed.FS

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	return assetsFS.ReadFile(clean)
}

// LoadAudio loads an embedded sound by file name, with or without the
// sounds/ prefix.
func LoadAudio(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if !strings.HasPrefix(clean, "sounds/") {
		clean = "sounds/" + clean
	}
	return assetsFS.ReadFile(clean)
}

// SoundNames lists the embedded sound files.
func SoundNames() []string {
	matches, _ := fs.Glob(assetsFS, "sounds/*.wav")
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.TrimPrefix(m, "sounds/"))
	}
	sort.Strings(out)
	return out
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
