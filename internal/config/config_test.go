package config

import (
	"os"
	"testing"

	"showcase/internal/paths"
)

func TestSaveAndLoad(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "showcase-test-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tempDir)

	paths.ConfigHomeOverride = tempDir
	paths.StateHomeOverride = tempDir
	defer func() {
		paths.ConfigHomeOverride = ""
		paths.StateHomeOverride = ""
	}()

	conf := AppConfig{
		Paths: PathConfig{
			Source: "portfolio.yaml",
			Output: "OUT.md",
		},
		Render: RenderConfig{
			ScreenshotWidth:  320,
			ScreenshotLayout: "grid",
		},
	}

	if err := SaveAppConfig(conf); err != nil {
		t.Errorf("SaveAppConfig failed: %v", err)
	}

	loaded := LoadAppConfig()
	if loaded.Paths.Source != "portfolio.yaml" {
		t.Errorf("Expected source 'portfolio.yaml', got '%s'", loaded.Paths.Source)
	}
	if loaded.Paths.Output != "OUT.md" {
		t.Errorf("Expected output 'OUT.md', got '%s'", loaded.Paths.Output)
	}
	if loaded.Render.ScreenshotWidth != 320 {
		t.Errorf("Expected screenshot width 320, got %d", loaded.Render.ScreenshotWidth)
	}
	if loaded.SourcePath != "portfolio.yaml" {
		t.Errorf("Expected expanded source path 'portfolio.yaml', got '%s'", loaded.SourcePath)
	}
}

func TestLoadDefaults(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "showcase-test-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tempDir)

	paths.ConfigHomeOverride = tempDir
	paths.StateHomeOverride = tempDir
	defer func() {
		paths.ConfigHomeOverride = ""
		paths.StateHomeOverride = ""
	}()

	loaded := LoadAppConfig()
	if loaded.Paths.Source != "projects.yaml" {
		t.Errorf("Expected default source 'projects.yaml', got '%s'", loaded.Paths.Source)
	}
	if loaded.Render.ScreenshotWidth != 200 {
		t.Errorf("Expected default screenshot width 200, got %d", loaded.Render.ScreenshotWidth)
	}

	// Defaults are written on first load
	if _, err := os.Stat(paths.GetConfigFilePath()); err != nil {
		t.Errorf("Expected config file to be written: %v", err)
	}
}

func TestExpandVariables(t *testing.T) {
	home, _ := os.UserHomeDir()
	got := ExpandVariables("${HOME}/projects.yaml")
	if got != home+"/projects.yaml" {
		t.Errorf("Expected '%s/projects.yaml', got '%s'", home, got)
	}
}
