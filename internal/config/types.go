package config

// FileName is the configuration record persisted at the project root.
const FileName = "components.json"

// DefaultStyle is the only visual preset currently shipped.
const DefaultStyle = "default"

// LegacyTailwindConfig is the build-tool config file used before Tailwind v4.
const LegacyTailwindConfig = "tailwind.config.js"

// Config is the persisted description of where generated files live.
// It is written once by init and read by every later command that needs paths.
type Config struct {
	Style    string   `json:"style"`    // Visual preset identifier
	TSX      bool     `json:"tsx"`      // Generated sources are TypeScript
	Tailwind Tailwind `json:"tailwind"` // Styling tool artifacts
	Aliases  Aliases  `json:"aliases"`  // Output locations for generated code
}

// Tailwind points at the styling artifacts of the host project.
// - Config: build-tool config file, empty for Tailwind v4 which has none.
// - CSS: stylesheet entry point, always set.
type Tailwind struct {
	Config string `json:"config"`
	CSS    string `json:"css"`
}

// Aliases are project-relative, slash-separated output locations.
// - Components: base directory for generated UI components.
// - Utils: shared utility module path without its extension.
type Aliases struct {
	Components string `json:"components"`
	Utils      string `json:"utils"`
}

// UsesTailwindV4 reports whether the record was built for Tailwind v4,
// which is exactly when no separate tailwind config is designated.
func (c *Config) UsesTailwindV4() bool {
	return c.Tailwind.Config == ""
}
