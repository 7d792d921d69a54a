// Package covers matches declared cover filenames against the covers
// directory and copies the matched images into the site.
package covers

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/purh/sitegen/pkg/sitegen/models"
)

// Dir is the site-relative directory holding cover images.
const Dir = "covers"

// DefaultPlaceholder is the file name of the built-in placeholder image.
const DefaultPlaceholder = "placeholder.svg"

//go:embed placeholder.svg
var defaultPlaceholder []byte

var (
	// ErrNoCover indicates the row declares no cover file.
	ErrNoCover = errors.New("no cover file declared")
	// ErrCoverNotFound indicates no file in the covers directory matches.
	ErrCoverNotFound = errors.New("cover file not found")
	// ErrUnsafeName indicates a declared name that points outside the covers directory.
	ErrUnsafeName = errors.New("cover name points outside the covers directory")
)

// Resolver resolves cover filenames against an index of the covers
// directory built once at construction.
type Resolver struct {
	dir         string
	exact       map[string]bool
	byStem      map[string][]string
	placeholder models.Cover
}

// NewResolver indexes dir. A missing directory yields an empty index, so
// every cover resolves to the placeholder. placeholder names an image in
// dir; when empty or absent the built-in image is used.
func NewResolver(dir, placeholder string) (*Resolver, error) {
	r := &Resolver{
		dir:    dir,
		exact:  make(map[string]bool),
		byStem: make(map[string][]string),
	}

	if dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read covers directory: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
				continue
			}
			name := e.Name()
			r.exact[name] = true
			stem := strings.TrimSuffix(name, filepath.Ext(name))
			r.byStem[stem] = append(r.byStem[stem], name)
		}
		for stem := range r.byStem {
			sort.Strings(r.byStem[stem])
		}
	}

	r.placeholder = models.Cover{Path: path.Join(Dir, DefaultPlaceholder), Missing: true}
	if placeholder != "" && safeName(placeholder) && r.exact[placeholder] {
		r.placeholder = models.Cover{
			Path:    path.Join(Dir, placeholder),
			Missing: true,
			Source:  filepath.Join(dir, placeholder),
		}
	}
	return r, nil
}

// Placeholder returns the cover used when a title has no usable image.
func (r *Resolver) Placeholder() models.Cover {
	return r.placeholder
}

// Resolve matches a declared filename. The exact name wins; otherwise a
// file with the same stem and a case-insensitively equal extension is
// accepted. A different stem never matches. On failure the placeholder
// is returned together with the reason.
func (r *Resolver) Resolve(file string) (models.Cover, error) {
	file = strings.TrimSpace(file)
	miss := r.placeholder
	miss.File = file

	if file == "" {
		return miss, ErrNoCover
	}
	if !safeName(file) {
		return miss, ErrUnsafeName
	}
	if r.exact[file] {
		return r.found(file, file), nil
	}

	ext := filepath.Ext(file)
	if ext != "" {
		stem := strings.TrimSuffix(file, ext)
		for _, candidate := range r.byStem[stem] {
			if strings.EqualFold(filepath.Ext(candidate), ext) {
				return r.found(file, candidate), nil
			}
		}
	}
	return miss, ErrCoverNotFound
}

func (r *Resolver) found(declared, actual string) models.Cover {
	return models.Cover{
		File:   declared,
		Path:   path.Join(Dir, actual),
		Source: filepath.Join(r.dir, actual),
	}
}

func safeName(name string) bool {
	return name != "." && name != ".." &&
		!strings.ContainsAny(name, `/\`) && !strings.Contains(name, "..") &&
		filepath.Base(name) == name
}
