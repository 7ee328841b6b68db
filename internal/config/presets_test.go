package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nocta-ui/internal/detect"
)

func TestBuildPresets(t *testing.T) {
	cases := []struct {
		env        detect.Environment
		components string
		utils      string
		css        string
	}{
		{detect.NextJS, "components", "lib/utils", "app/globals.css"},
		{detect.Vite, "src/components", "src/lib/utils", "src/index.css"},
		{detect.Generic, "src/components", "src/lib/utils", "src/styles/globals.css"},
	}

	for _, tc := range cases {
		for _, v4 := range []bool{false, true} {
			cfg := Build(tc.env, v4)

			assert.Equal(t, DefaultStyle, cfg.Style, "%s v4=%t", tc.env, v4)
			assert.True(t, cfg.TSX)
			assert.Equal(t, tc.components, cfg.Aliases.Components, "%s v4=%t", tc.env, v4)
			assert.Equal(t, tc.utils, cfg.Aliases.Utils, "%s v4=%t", tc.env, v4)
			assert.Equal(t, tc.css, cfg.Tailwind.CSS, "%s v4=%t", tc.env, v4)

			if v4 {
				assert.Empty(t, cfg.Tailwind.Config)
				assert.True(t, cfg.UsesTailwindV4())
			} else {
				assert.Equal(t, "tailwind.config.js", cfg.Tailwind.Config)
				assert.False(t, cfg.UsesTailwindV4())
			}
			assert.NoError(t, cfg.Validate())
		}
	}
}

func TestPresetForUnknownFallsBackToGeneric(t *testing.T) {
	assert.Equal(t, PresetFor(detect.Generic), PresetFor(detect.Environment("remix")))
}
