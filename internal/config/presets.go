package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/VoidMesh/terragen/internal/mesh"
	"github.com/VoidMesh/terragen/internal/noise"
	"github.com/VoidMesh/terragen/internal/terrain"
	"github.com/VoidMesh/terragen/internal/texture"
	"github.com/VoidMesh/terragen/internal/validation"
)

// DefaultPresetName is always present in a preset set.
const DefaultPresetName = "default"

// Presets is an immutable set of named terrain settings.
type Presets struct {
	byName map[string]terrain.Settings
}

type presetFile struct {
	Presets []yaml.Node `yaml:"presets"`
}

// BuiltinPresets returns the presets compiled into the binary.
func BuiltinPresets() *Presets {
	p := &Presets{byName: make(map[string]terrain.Settings)}

	def := terrain.DefaultSettings()
	def.Name = DefaultPresetName
	p.byName[def.Name] = def

	islands := terrain.DefaultSettings()
	islands.Name = "islands"
	islands.Noise.Algorithm = noise.OpenSimplex
	islands.Noise.BaseScale = 35
	islands.Noise.Persistence = 0.45
	islands.Bands = []texture.Band{
		{Name: "deep water", Color: texture.MustParseHex("#104E8B"), Threshold: 0.45},
		{Name: "water", Color: texture.MustParseHex("#1E90FF"), Threshold: 0.55},
		{Name: "sand", Color: texture.MustParseHex("#FFD700"), Threshold: 0.6},
		{Name: "grass", Color: texture.MustParseHex("#7CFC00"), Threshold: 0.8},
		{Name: "stone", Color: texture.MustParseHex("#708090"), Threshold: 1.0},
	}
	p.byName[islands.Name] = islands

	mountains := terrain.DefaultSettings()
	mountains.Name = "mountains"
	mountains.HeightMultiplier = 40
	mountains.Noise.Octaves = 6
	mountains.Noise.BaseScale = 60
	mountains.Noise.Persistence = 0.55
	mountains.Curve = []mesh.Keyframe{{Time: 0, Value: 0}, {Time: 0.4, Value: 0.1}, {Time: 1, Value: 1}}
	p.byName[mountains.Name] = mountains

	return p
}

// LoadPresets reads a YAML preset file and merges it over the built-in
// presets. An empty path returns the built-in presets.
func LoadPresets(path string) (*Presets, error) {
	if path == "" {
		return BuiltinPresets(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}
	return ParsePresets(data)
}

// ParsePresets decodes a preset document. Each entry starts from
// terrain.DefaultSettings, so only the overridden fields need to be listed.
// An entry named "default" replaces the built-in default.
func ParsePresets(data []byte) (*Presets, error) {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}

	p := BuiltinPresets()
	seen := make(map[string]bool, len(file.Presets))

	for i := range file.Presets {
		settings := terrain.DefaultSettings()
		if err := file.Presets[i].Decode(&settings); err != nil {
			return nil, fmt.Errorf("failed to decode preset %d: %w", i, err)
		}
		if settings.Name == "" {
			return nil, validation.Errorf("name", "preset %d has no name", i)
		}
		if seen[settings.Name] {
			return nil, validation.Errorf("name", "duplicate preset %q", settings.Name)
		}
		if err := settings.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", settings.Name, err)
		}

		seen[settings.Name] = true
		p.byName[settings.Name] = settings
	}

	return p, nil
}

// Get returns a copy of the named preset.
func (p *Presets) Get(name string) (terrain.Settings, bool) {
	s, ok := p.byName[name]
	if !ok {
		return terrain.Settings{}, false
	}
	return s.Clone(), true
}

// Default returns a copy of the default preset.
func (p *Presets) Default() terrain.Settings {
	s, _ := p.Get(DefaultPresetName)
	return s
}

// Names returns the preset names with "default" first and the rest sorted.
func (p *Presets) Names() []string {
	names := make([]string, 0, len(p.byName))
	for name := range p.byName {
		if name != DefaultPresetName {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{DefaultPresetName}, names...)
}

// Len returns the number of presets.
func (p *Presets) Len() int {
	return len(p.byName)
}
