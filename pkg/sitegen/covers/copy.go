package covers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/purh/sitegen/pkg/sitegen/models"
)

// Copy copies the placeholder and every resolved cover into outDir,
// keeping their site-relative paths. Each source is copied once.
func Copy(outDir string, placeholder models.Cover, titles []models.Title) error {
	if err := os.MkdirAll(filepath.Join(outDir, Dir), 0o755); err != nil {
		return err
	}

	if placeholder.Source == "" {
		dst := filepath.Join(outDir, filepath.FromSlash(placeholder.Path))
		if err := os.WriteFile(dst, defaultPlaceholder, 0o644); err != nil {
			return fmt.Errorf("write placeholder: %w", err)
		}
	} else if err := copyFile(placeholder.Source, filepath.Join(outDir, filepath.FromSlash(placeholder.Path))); err != nil {
		return err
	}

	done := map[string]bool{placeholder.Path: true}
	for _, t := range titles {
		c := t.Cover
		if c.Missing || c.Source == "" || done[c.Path] {
			continue
		}
		done[c.Path] = true
		if err := copyFile(c.Source, filepath.Join(outDir, filepath.FromSlash(c.Path))); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("copy cover: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("copy cover: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy cover %s: %w", filepath.Base(src), err)
	}
	return out.Close()
}
