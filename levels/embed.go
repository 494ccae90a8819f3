package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrUnknownLayer = errors.New("levels: unknown layer")

// Level is a hand-authored level: solid rectangles plus named object layers.
// All coordinates are world pixels with the origin at the top-left.
type Level struct {
	Name   string        `json:"name"`
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	Music  string        `json:"music,omitempty"`
	Solids []Rect        `json:"solids"`
	Layers []ObjectLayer `json:"layers"`
}

type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type ObjectLayer struct {
	Name    string   `json:"name"`
	Objects []Object `json:"objects"`
}

// Object is a spawn point. X and Y are the top-left corner; zero Width or
// Height means the spawner's default size for the type.
type Object struct {
	Type   string                 `json:"type,omitempty"`
	X      float64                `json:"x"`
	Y      float64                `json:"y"`
	Width  float64                `json:"width,omitempty"`
	Height float64                `json:"height,omitempty"`
	Props  map[string]interface{} `json:"props,omitempty"`
}

// Layer returns the named object layer.
func (l *Level) Layer(name string) (ObjectLayer, error) {
	for _, layer := range l.Layers {
		if layer.Name == name {
			return layer, nil
		}
	}
	return ObjectLayer{}, fmt.Errorf("%w: %s", ErrUnknownLayer, name)
}

// Names lists the embedded level names without extension.
func Names() []string {
	matches, _ := fs.Glob(LevelsFS, "*.json")
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.TrimSuffix(m, ".json"))
	}
	sort.Strings(out)
	return out
}

func LoadLevelFromFS(name string) (*Level, error) {
	return LoadLevel(LevelsFS, name)
}

// LoadLevel reads name (".json" optional) from fsys.
func LoadLevel(fsys fs.FS, name string) (*Level, error) {
	file := path.Clean(name)
	if !strings.HasSuffix(file, ".json") {
		file += ".json"
	}
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(path.Base(file), ".json")
	}
	return &lvl, nil
}
