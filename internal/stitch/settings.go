package stitch

import "github.com/Faultbox/lightbake/internal/config"

// Settings configures one stitching job.
type Settings struct {
	BackgroundTechnique string
	BackgroundModel     string
	SeamsTechnique      string
	RenderPath          string
	BlendFactor         float32 // seam blend strength in [0,1]
	NumIterations       int     // must be >= 0; zero is a valid pass-through
}

// DefaultSettings returns the standard stitching configuration.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.Default().Stitching)
}

// SettingsFromConfig builds job settings from loaded configuration.
func SettingsFromConfig(cfg config.StitchingConfig) Settings {
	return Settings{
		BackgroundTechnique: cfg.BackgroundTechnique,
		BackgroundModel:     cfg.BackgroundModel,
		SeamsTechnique:      cfg.SeamsTechnique,
		RenderPath:          cfg.RenderPath,
		BlendFactor:         cfg.BlendFactor,
		NumIterations:       cfg.NumIterations,
	}
}
