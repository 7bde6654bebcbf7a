package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagBackend    = flag.String("backend", "", "Rendering backend (software, opengl)")
	flagIterations = flag.Int("iterations", -1, "Number of stitching iterations")
	flagBlend      = flag.Float64("blend", -1, "Seam blend factor in [0,1]")
)

// ParseFlags parses command-line flags from the given arguments. Subcommand
// mains pass their tail args here.
func ParseFlags(args []string) {
	flag.CommandLine.Parse(args)
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagBackend != "" {
		cfg.Renderer.Backend = *flagBackend
	}
	if *flagIterations >= 0 {
		cfg.Stitching.NumIterations = *flagIterations
	}
	if *flagBlend >= 0 {
		cfg.Stitching.BlendFactor = float32(*flagBlend)
	}
}
