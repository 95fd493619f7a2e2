package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	// NFC composition: e + combining acute becomes é
	require.Equal(t, "é", Normalize("é"))
	require.Equal(t, "a\nb", Normalize("a\r\nb"))
	require.Equal(t, "a\nb", Normalize("a\rb"))
	require.Equal(t, "plain", Normalize("plain"))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("the cat\nsat"), 0644))

	docs, err := Load([]string{path}, false)
	require.NoError(t, err)
	require.Equal(t, []string{"the cat\nsat"}, docs)
}

func TestLoadDocPerLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docs.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\n\ntwo\r\nthree\n"), 0644))

	docs, err := Load([]string{path}, true)
	require.NoError(t, err)
	require.Equal(t, []string{"one", "two", "three"}, docs)
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("second"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("first"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	// name order, subdirectories skipped
	docs, err := Load([]string{dir}, false)
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second"}, docs)
}

func TestLoadMissingPath(t *testing.T) {
	_, err := Load([]string{"/no/such/file"}, false)
	require.Error(t, err)
}
