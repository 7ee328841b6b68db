package detect

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"nocta-ui/internal/logger"
)

// utf8BOM may prefix package.json files written by some Windows editors.
var utf8BOM = []byte("\xef\xbb\xbf")

// Manifest is the part of package.json the detector cares about.
// Entry values stay untyped so an odd unrelated entry cannot spoil the lookup.
type Manifest struct {
	Dependencies    map[string]any `json:"dependencies"`
	DevDependencies map[string]any `json:"devDependencies"`
}

// TailwindRange returns the declared tailwindcss range, looking at
// dependencies before devDependencies. Non-string entries are ignored.
func (m Manifest) TailwindRange() string {
	if v, ok := m.Dependencies["tailwindcss"].(string); ok && v != "" {
		return v
	}
	v, _ := m.DevDependencies["tailwindcss"].(string)
	return v
}

// IsTailwindV4 reports whether package.json in root declares Tailwind v4.
// An unreadable or malformed manifest counts as legacy: classification must
// never block init.
//
// The check is textual: a range containing "^4" or "4." is v4. Ranges like
// ">=3 <4.0" or "^3.4.1" therefore also read as v4.
func IsTailwindV4(root string) bool {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		logger.Debug("[DEBUG] Cannot read package.json, assuming Tailwind v3: %v\n", err)
		return false
	}

	var m Manifest
	if err := json.Unmarshal(bytes.TrimPrefix(data, utf8BOM), &m); err != nil {
		logger.Debug("[DEBUG] Cannot parse package.json, assuming Tailwind v3: %v\n", err)
		return false
	}

	return isV4Range(m.TailwindRange())
}

func isV4Range(r string) bool {
	return r != "" && (strings.Contains(r, "^4") || strings.Contains(r, "4."))
}
