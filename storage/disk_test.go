package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/orderdesk/models"
)

func TestDiskStoreSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "http://localhost:8080")

	stored, err := store.Save("burger.png", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored, "products/"))
	assert.True(t, strings.HasSuffix(stored, "_burger.png"))

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(stored)))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	require.NoError(t, store.Delete(stored))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(stored)))
	assert.True(t, os.IsNotExist(err))
}

func TestDiskStoreDeleteMissingFile(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "http://localhost:8080")
	assert.NoError(t, store.Delete("products/gone.png"))
}

func TestDiskStoreNeverDeletesDefaultImage(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "http://localhost:8080")

	full := filepath.Join(dir, filepath.FromSlash(models.DefaultImagePath))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte("default"), 0o644))

	require.NoError(t, store.Delete(models.DefaultImagePath))
	_, err := os.Stat(full)
	assert.NoError(t, err, "default image must survive delete")
}

func TestDiskStoreURL(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "http://localhost:8080/")

	assert.Equal(t, "http://localhost:8080/storage/products/a.png", store.URL("products/a.png"))
	assert.Equal(t, "http://localhost:8080/storage/"+models.DefaultImagePath, store.URL(""))
}
