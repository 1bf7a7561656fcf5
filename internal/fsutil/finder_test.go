package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
	return root
}

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	root := writeTree(t, "a.srt", "b.txt", filepath.Join("nested", "deep", "c.srt"))

	files, err := FindFilesByExtension(root, ".srt")
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Contains(t, files, filepath.Join(root, "a.srt"))
	require.Contains(t, files, filepath.Join(root, "nested", "deep", "c.srt"))
}

func TestFindFilesByExtensions_CaseInsensitive(t *testing.T) {
	t.Parallel()

	root := writeTree(t, "a.MP4", "b.mkv", "c.srt")

	files, err := FindFilesByExtensions(root, []string{".mp4", ".mkv"})
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Contains(t, files, filepath.Join(root, "a.MP4"))
	require.Contains(t, files, filepath.Join(root, "b.mkv"))
}

func TestFindFilesByExtensions_NoMatches(t *testing.T) {
	t.Parallel()

	files, err := FindFilesByExtensions(t.TempDir(), []string{".srt"})
	require.NoError(t, err)
	require.Empty(t, files)
}

func TestFindFilesByExtension_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "missing"), ".srt")
	require.Error(t, err)
}

func TestFindFilesByExtension_EmptyExtensionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		_, _ = FindFilesByExtension(t.TempDir(), "")
	})
}
