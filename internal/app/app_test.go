package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/album-catalog/internal/config"
	"github.com/handiism/album-catalog/internal/storage"
	"github.com/handiism/album-catalog/internal/theme"
)

func writeSettings(t *testing.T, s *config.Settings) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, s.Save(path))
	return path
}

func TestLoadSettings_Overrides(t *testing.T) {
	s := config.DefaultSettings()
	s.StateDir = t.TempDir()
	path := writeSettings(t, s)

	got, err := LoadSettings(Options{ConfigPath: path, Source: "https://example.com/data.json", Verbose: true})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/data.json", got.DataSource)
	assert.Equal(t, "debug", got.LogLevel)
}

func TestLoadSettings_InvalidOverride(t *testing.T) {
	s := config.DefaultSettings()
	s.StateDir = t.TempDir()
	path := writeSettings(t, s)

	_, err := LoadSettings(Options{ConfigPath: path, Source: "https://"})
	require.Error(t, err)
}

func TestNew_RestoresSavedTheme(t *testing.T) {
	s := config.DefaultSettings()
	s.StateDir = t.TempDir()
	path := writeSettings(t, s)
	ctx := context.Background()

	first, err := New(ctx, Options{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, first.Theme.Current())
	_, err = first.Theme.Toggle(ctx)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := New(ctx, Options{ConfigPath: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })
	assert.Equal(t, theme.Light, second.Theme.Current())

	_, err = os.Stat(s.PreferencesPath())
	assert.NoError(t, err)
	_, err = os.Stat(s.LogPath())
	assert.NoError(t, err)
}

func TestNew_StderrLog(t *testing.T) {
	s := config.DefaultSettings()
	s.StateDir = t.TempDir()
	path := writeSettings(t, s)

	var buf bytes.Buffer
	a, err := New(context.Background(), Options{ConfigPath: path, LogFile: StderrLog, Verbose: true, Stderr: &buf})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.Contains(t, buf.String(), "application initialized")
}

func TestBrowseOptions(t *testing.T) {
	s := config.DefaultSettings()
	s.StateDir = t.TempDir()
	s.ShowCovers = false
	path := writeSettings(t, s)

	a, err := New(context.Background(), Options{ConfigPath: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	opts := a.BrowseOptions()
	assert.Nil(t, opts.Covers)
	assert.Same(t, a.Theme, opts.Theme)
	assert.Equal(t, s.SearchDebounce, opts.SearchDebounce)
	assert.Equal(t, "data.json", opts.Source)
}

func TestNew_FallsBackToMemoryStore(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	s := config.DefaultSettings()
	s.StateDir = blocker
	path := writeSettings(t, s)

	var buf bytes.Buffer
	a, err := New(context.Background(), Options{ConfigPath: path, LogFile: StderrLog, Stderr: &buf})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.IsType(t, &storage.MemoryStore{}, a.Store)
	assert.Contains(t, buf.String(), "preferences kept in memory")

	_, err = a.Theme.Toggle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, theme.Light, a.Theme.Current())
}
