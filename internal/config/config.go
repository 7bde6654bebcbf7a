// Package config handles lightmap baking configuration loading and management.
package config

// Config holds all baking tool settings.
type Config struct {
	Stitching StitchingConfig `yaml:"stitching"`
	Renderer  RendererConfig  `yaml:"renderer"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// StitchingConfig holds seam stitching settings.
type StitchingConfig struct {
	BackgroundTechnique string  `yaml:"background_technique"` // technique for the buffer copy pass
	BackgroundModel     string  `yaml:"background_model"`     // full-screen quad model name
	SeamsTechnique      string  `yaml:"seams_technique"`      // technique for the seam blend pass
	RenderPath          string  `yaml:"render_path"`
	BlendFactor         float32 `yaml:"blend_factor"`   // seam blend strength in [0,1]
	NumIterations       int     `yaml:"num_iterations"` // ping-pong iteration count
}

// RendererConfig selects the rendering backend.
type RendererConfig struct {
	Backend string `yaml:"backend"` // "software" or "opengl"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Stitching: StitchingConfig{
			BackgroundTechnique: "Stitch/Background",
			BackgroundModel:     "Stitch/Quad",
			SeamsTechnique:      "Stitch/SeamBlend",
			RenderPath:          "Stitch/Forward",
			BlendFactor:         0.5,
			NumIterations:       8,
		},
		Renderer: RendererConfig{
			Backend: "software",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
