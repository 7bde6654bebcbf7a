package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Stitching.BackgroundTechnique != "Stitch/Background" {
		t.Errorf("expected background technique Stitch/Background, got %s", cfg.Stitching.BackgroundTechnique)
	}
	if cfg.Stitching.BackgroundModel != "Stitch/Quad" {
		t.Errorf("expected background model Stitch/Quad, got %s", cfg.Stitching.BackgroundModel)
	}
	if cfg.Stitching.SeamsTechnique != "Stitch/SeamBlend" {
		t.Errorf("expected seams technique Stitch/SeamBlend, got %s", cfg.Stitching.SeamsTechnique)
	}
	if cfg.Stitching.RenderPath != "Stitch/Forward" {
		t.Errorf("expected render path Stitch/Forward, got %s", cfg.Stitching.RenderPath)
	}
	if cfg.Stitching.BlendFactor != 0.5 {
		t.Errorf("expected blend factor 0.5, got %f", cfg.Stitching.BlendFactor)
	}
	if cfg.Stitching.NumIterations != 8 {
		t.Errorf("expected 8 iterations, got %d", cfg.Stitching.NumIterations)
	}

	if cfg.Renderer.Backend != "software" {
		t.Errorf("expected software backend, got %s", cfg.Renderer.Backend)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "stitchtool.yaml")

	yamlContent := `
stitching:
  background_technique: "Custom/Background"
  seams_technique: "Custom/SeamBlend"
  render_path: "Custom/Forward"
  blend_factor: 0.25
  num_iterations: 16

renderer:
  backend: opengl

logging:
  level: "debug"
  log_file: "stitch.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Stitching.BackgroundTechnique != "Custom/Background" {
		t.Errorf("expected Custom/Background, got %s", cfg.Stitching.BackgroundTechnique)
	}
	if cfg.Stitching.SeamsTechnique != "Custom/SeamBlend" {
		t.Errorf("expected Custom/SeamBlend, got %s", cfg.Stitching.SeamsTechnique)
	}
	if cfg.Stitching.RenderPath != "Custom/Forward" {
		t.Errorf("expected Custom/Forward, got %s", cfg.Stitching.RenderPath)
	}
	if cfg.Stitching.BlendFactor != 0.25 {
		t.Errorf("expected blend factor 0.25, got %f", cfg.Stitching.BlendFactor)
	}
	if cfg.Stitching.NumIterations != 16 {
		t.Errorf("expected 16 iterations, got %d", cfg.Stitching.NumIterations)
	}

	// Values absent from the file keep their defaults.
	if cfg.Stitching.BackgroundModel != "Stitch/Quad" {
		t.Errorf("expected default background model, got %s", cfg.Stitching.BackgroundModel)
	}

	if cfg.Renderer.Backend != "opengl" {
		t.Errorf("expected opengl backend, got %s", cfg.Renderer.Backend)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "stitch.log" {
		t.Errorf("expected log file 'stitch.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	if err := os.WriteFile(configPath, []byte("stitching: [not a mapping"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
