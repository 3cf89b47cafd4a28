package assets

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"showcase/internal/catalog"
)

func TestCopyImages(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()

	write := func(name, content string) {
		if err := os.WriteFile(filepath.Join(srcDir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("logo.svg", "logo-bytes")
	write("shot-a.png", "shot-a-bytes")
	write("shot-b.jpg", "shot-b-bytes")

	c := &catalog.Catalog{
		Projects: []catalog.Project{
			{
				ID:         "demo",
				Title:      "Demo",
				Categories: []string{"Other"},
				Media: catalog.Media{
					Logo:        "logo.svg",
					Banner:      "https://example.com/banner.png",
					Screenshots: []string{"shot-a.png", "shot-b.jpg", "missing.png"},
				},
			},
		},
	}

	copied, err := CopyImages(context.Background(), c, srcDir, outDir)
	if err != nil {
		t.Fatalf("CopyImages failed: %v", err)
	}
	// Remote banner and missing screenshot are skipped
	if copied != 3 {
		t.Errorf("Expected 3 files copied, got %d", copied)
	}

	for _, want := range []string{
		"images/demo/logo.svg",
		"images/demo/1.png",
		"images/demo/2.jpg",
	} {
		if _, err := os.Stat(filepath.Join(outDir, want)); err != nil {
			t.Errorf("Expected %s to exist: %v", want, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(outDir, "images/demo/1.png"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "shot-a-bytes" {
		t.Errorf("Screenshot content mismatch: %q", data)
	}
}

func TestCopyImagesNone(t *testing.T) {
	c := &catalog.Catalog{
		Projects: []catalog.Project{
			{ID: "bare", Title: "Bare", Categories: []string{"Other"}},
		},
	}
	copied, err := CopyImages(context.Background(), c, t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("CopyImages failed: %v", err)
	}
	if copied != 0 {
		t.Errorf("Expected 0 files copied, got %d", copied)
	}
}
