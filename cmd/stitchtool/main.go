// stitchtool is a CLI utility for blending the UV-chart seams of baked
// lightmap images.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/lightbake/internal/config"
	"github.com/Faultbox/lightbake/internal/logger"
	"github.com/Faultbox/lightbake/internal/render"
	"github.com/Faultbox/lightbake/internal/render/glrender"
	"github.com/Faultbox/lightbake/internal/render/softrender"
	"github.com/Faultbox/lightbake/internal/stitch"
)

var (
	flagIn    = flag.String("in", "", "Input lightmap image (PNG or TGA)")
	flagOut   = flag.String("out", "", "Output image (PNG or WebP by extension)")
	flagSeams = flag.String("seams", "", "YAML seam list file")
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "stitch":
		cmdStitch(args)
	case "info":
		cmdInfo(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`stitchtool - lightmap seam stitching utility

Usage:
  stitchtool <command> [options]

Commands:
  stitch -in <lightmap> -seams <seams.yaml> -out <output>  Blend seams
  info <seams.yaml>                                        Show seam list stats

Options for stitch:
  -backend name      Rendering backend (software, opengl)
  -iterations n      Number of stitching iterations
  -blend f           Seam blend factor in [0,1]
  -config path       Path to config file
  -debug             Enable debug logging

Examples:
  stitchtool stitch -in lightmap.png -seams seams.yaml -out stitched.png
  stitchtool stitch -in lightmap.tga -seams seams.yaml -out stitched.webp -iterations 16
  stitchtool info seams.yaml`)
}

func cmdStitch(args []string) {
	config.ParseFlags(args)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *flagIn == "" || *flagOut == "" || *flagSeams == "" {
		fmt.Fprintln(os.Stderr, "Usage: stitchtool stitch -in lightmap.png -seams seams.yaml -out stitched.png [options]")
		os.Exit(1)
	}

	if err := runStitch(cfg); err != nil {
		logger.Error("stitching failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("lightmap stitched", zap.String("output", *flagOut))
}

func runStitch(cfg *config.Config) error {
	buf, size, err := loadLightmap(*flagIn)
	if err != nil {
		return fmt.Errorf("loading lightmap: %w", err)
	}

	seams, err := loadSeams(*flagSeams)
	if err != nil {
		return fmt.Errorf("loading seams: %w", err)
	}
	logger.Info("stitching lightmap",
		zap.Int("size", size),
		zap.Int("seams", len(seams)),
		zap.Int("iterations", cfg.Stitching.NumIterations),
		zap.String("backend", cfg.Renderer.Backend),
	)

	backend, err := newBackend(cfg.Renderer.Backend)
	if err != nil {
		return err
	}
	defer backend.Release()

	ctx, err := stitch.InitializeContext(backend, size, 4)
	if err != nil {
		return err
	}
	defer ctx.Release()

	seamsModel := stitch.CreateSeamsModel(seams)
	settings := stitch.SettingsFromConfig(cfg.Stitching)

	if err := stitch.Stitch(backend, ctx, buf, settings, seamsModel); err != nil {
		return err
	}

	return saveLightmap(*flagOut, buf, size)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: stitchtool info <seams.yaml>")
		os.Exit(1)
	}

	seams, err := loadSeams(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var totalLength float32
	for _, seam := range seams {
		totalLength += seam.Positions[0].Distance(seam.Positions[1])
	}

	fmt.Printf("Seam list: %s\n", args[0])
	fmt.Printf("Seams:     %d\n", len(seams))
	if len(seams) > 0 {
		fmt.Printf("UV length: %.4f total, %.4f average\n",
			totalLength, totalLength/float32(len(seams)))
	}
}

// newBackend creates the configured rendering backend.
func newBackend(name string) (render.Backend, error) {
	switch name {
	case "software", "":
		return softrender.New(), nil
	case "opengl":
		return glrender.New()
	default:
		return nil, fmt.Errorf("unknown rendering backend %q", name)
	}
}
