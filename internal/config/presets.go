package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"nocta-ui/internal/detect"
)

//go:embed presets.yaml
var presetsYAML []byte

// Preset holds the environment specific paths of a configuration record.
type Preset struct {
	Components string `yaml:"components"`
	Utils      string `yaml:"utils"`
	CSS        string `yaml:"css"`
}

var presets = mustLoadPresets(presetsYAML)

func mustLoadPresets(data []byte) map[detect.Environment]Preset {
	var out map[detect.Environment]Preset
	if err := yaml.Unmarshal(data, &out); err != nil {
		panic("Failed to unmarshal presets.yaml: " + err.Error())
	}
	if _, ok := out[detect.Generic]; !ok {
		panic("presets.yaml has no generic preset")
	}
	return out
}

// PresetFor returns the preset of env, falling back to the generic one.
func PresetFor(env detect.Environment) Preset {
	if p, ok := presets[env]; ok {
		return p
	}
	return presets[detect.Generic]
}

// Build derives the configuration record for a detected project.
// Tailwind v4 has no separate config file, so Tailwind.Config stays empty.
func Build(env detect.Environment, tailwindV4 bool) Config {
	p := PresetFor(env)

	tailwindConfig := LegacyTailwindConfig
	if tailwindV4 {
		tailwindConfig = ""
	}

	return Config{
		Style: DefaultStyle,
		TSX:   true,
		Tailwind: Tailwind{
			Config: tailwindConfig,
			CSS:    p.CSS,
		},
		Aliases: Aliases{
			Components: p.Components,
			Utils:      p.Utils,
		},
	}
}
