package covers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/purh/sitegen/pkg/sitegen/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coversDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte(n), 0o644))
	}
	return dir
}

func TestResolve(t *testing.T) {
	dir := coversDir(t, "9782877759908.jpg", "atlas.JPG", "atlas-v2.jpg", "fond.png")
	r, err := NewResolver(dir, "fond.png")
	require.NoError(t, err)

	tests := []struct {
		file    string
		path    string
		wantErr error
	}{
		{"9782877759908.jpg", "covers/9782877759908.jpg", nil},
		{"atlas.jpg", "covers/atlas.JPG", nil},
		{" atlas.JPG ", "covers/atlas.JPG", nil},
		{"atlas.png", "covers/fond.png", ErrCoverNotFound},
		{"atlas", "covers/fond.png", ErrCoverNotFound},
		{"atlas-v3.jpg", "covers/fond.png", ErrCoverNotFound},
		{"", "covers/fond.png", ErrNoCover},
		{"../secret.jpg", "covers/fond.png", ErrUnsafeName},
		{"sub/atlas.jpg", "covers/fond.png", ErrUnsafeName},
	}
	for _, tt := range tests {
		got, err := r.Resolve(tt.file)
		assert.ErrorIs(t, err, tt.wantErr, "Resolve(%q)", tt.file)
		if tt.wantErr == nil {
			assert.NoError(t, err, "Resolve(%q)", tt.file)
		}
		assert.Equal(t, tt.path, got.Path, "Resolve(%q)", tt.file)
		assert.Equal(t, tt.wantErr != nil, got.Missing, "Resolve(%q).Missing", tt.file)
	}
}

func TestResolveMissingDirectory(t *testing.T) {
	r, err := NewResolver(filepath.Join(t.TempDir(), "absent"), "fond.png")
	require.NoError(t, err)

	got, err := r.Resolve("atlas.jpg")
	assert.ErrorIs(t, err, ErrCoverNotFound)
	assert.Equal(t, models.Cover{File: "atlas.jpg", Path: "covers/placeholder.svg", Missing: true}, got)
}

func TestCopy(t *testing.T) {
	dir := coversDir(t, "a.jpg", "b.png")
	r, err := NewResolver(dir, "")
	require.NoError(t, err)

	a, err := r.Resolve("a.jpg")
	require.NoError(t, err)
	missing, _ := r.Resolve("zzz.jpg")
	titles := []models.Title{{Cover: a}, {Cover: a}, {Cover: missing}}

	out := t.TempDir()
	require.NoError(t, Copy(out, r.Placeholder(), titles))

	data, err := os.ReadFile(filepath.Join(out, "covers", "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", string(data))
	assert.FileExists(t, filepath.Join(out, "covers", "placeholder.svg"))
	assert.NoFileExists(t, filepath.Join(out, "covers", "b.png"))
}
