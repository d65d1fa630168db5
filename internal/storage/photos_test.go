package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotoStore_Save(t *testing.T) {
	root := t.TempDir()
	store := NewPhotoStore(root)

	relPath, err := store.Save("sofa.JPG", []byte("image bytes"))
	require.NoError(t, err)

	now := time.Now().UTC()
	wantPrefix := filepath.ToSlash(filepath.Join("task_photos", now.Format("2006"), now.Format("01"), now.Format("02")))
	assert.True(t, strings.HasPrefix(relPath, wantPrefix), "got %s", relPath)
	assert.True(t, strings.HasSuffix(relPath, ".jpg"))

	data, err := os.ReadFile(store.Path(relPath))
	require.NoError(t, err)
	assert.Equal(t, []byte("image bytes"), data)
}

func TestPhotoStore_Save_UnknownExtensionFallsBack(t *testing.T) {
	store := NewPhotoStore(t.TempDir())

	relPath, err := store.Save("payload.exe", []byte("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(relPath, ".jpg"), "got %s", relPath)
}

func TestPhotoStore_Save_UniqueNames(t *testing.T) {
	store := NewPhotoStore(t.TempDir())

	first, err := store.Save("a.png", []byte("1"))
	require.NoError(t, err)
	second, err := store.Save("a.png", []byte("2"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
