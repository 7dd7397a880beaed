package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleCatalog = `[
  {"banda": "A", "album": "X", "ano": 1999, "descricao": "Primeiro", "tracklist": "Um, Dois", "imagem": "", "link": "https://example.com/a", "spotify_link": "https://open.spotify.com/album/a"},
  {"banda": "B", "album": "Y", "ano": "2001", "descricao": "", "tracklist": "", "imagem": "", "link": "", "spotify_link": ""}
]`

// isolate points the settings and state directories at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}

func writeCatalog(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}
