package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestChatFiles(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.txt"))
	touch(t, filepath.Join(root, "a.txt"))
	touch(t, filepath.Join(root, "notes.md"))
	touch(t, filepath.Join(root, "sub", "c.txt"))
	touch(t, filepath.Join(root, ".hidden", "d.txt"))

	files, err := ChatFiles(root)
	require.NoError(t, err)

	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(root, "a.txt"), files[0])
	assert.Equal(t, filepath.Join(root, "b.txt"), files[1])
	assert.Equal(t, filepath.Join(root, "sub", "c.txt"), files[2])
}

func TestChatFiles_EmptyRoot(t *testing.T) {
	files, err := ChatFiles(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}
