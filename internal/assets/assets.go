// Package assets copies the images a catalog references into the layout
// the rendered document links to: images/<project-id>/{logo.ext, banner.ext,
// 1.ext, 2.ext, ...} next to the output file.
package assets

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"showcase/internal/catalog"
	"showcase/internal/constants"
	"showcase/internal/logger"
)

// CopyImages copies every locally resolvable image reference of the catalog
// into baseDir/images/<id>/. Remote URLs and missing files are skipped with
// a warning. Relative source paths resolve against sourceDir.
// It returns the number of files copied.
func CopyImages(ctx context.Context, c *catalog.Catalog, sourceDir, baseDir string) (int, error) {
	copied := 0

	for i := range c.Projects {
		p := &c.Projects[i]
		destDir := filepath.Join(baseDir, constants.ImagesDirName, p.ID)

		if p.Media.Logo != "" {
			n, err := copyOne(ctx, p.Media.Logo, sourceDir, destDir, "logo")
			if err != nil {
				return copied, err
			}
			copied += n
		}
		if p.Media.Banner != "" {
			n, err := copyOne(ctx, p.Media.Banner, sourceDir, destDir, "banner")
			if err != nil {
				return copied, err
			}
			copied += n
		}
		for idx, ss := range p.Media.Screenshots {
			n, err := copyOne(ctx, ss, sourceDir, destDir, fmt.Sprintf("%d", idx+1))
			if err != nil {
				return copied, err
			}
			copied += n
		}
	}

	return copied, nil
}

// copyOne copies a single image to destDir/<name><ext>. Remote and missing
// sources are skipped, returning 0.
func copyOne(ctx context.Context, src, sourceDir, destDir, name string) (int, error) {
	if isRemote(src) {
		return 0, nil
	}

	resolved := src
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(sourceDir, resolved)
	}
	if _, err := os.Stat(resolved); err != nil {
		logger.Warn(ctx, "Image {{_File_}}%s{{|-|}} not found, skipping", resolved)
		return 0, nil
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return 0, fmt.Errorf("creating %q: %w", destDir, err)
	}

	ext := filepath.Ext(resolved)
	if ext == "" {
		ext = ".png"
	}
	dest := filepath.Join(destDir, name+ext)

	if err := copyFile(resolved, dest); err != nil {
		return 0, fmt.Errorf("copying %q: %w", resolved, err)
	}
	logger.Info(ctx, "Copied {{_File_}}%s{{|-|}} to {{_File_}}%s{{|-|}}", resolved, dest)
	return 1, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}
