// Package storage provides the file-backed image store products record
// their image_path against.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ray-remotestate/orderdesk/models"
)

// DiskStore keeps uploaded images under a base directory and resolves
// stored paths to public URLs under baseURL/storage/.
type DiskStore struct {
	baseDir string
	baseURL string
}

func NewDiskStore(baseDir, baseURL string) *DiskStore {
	return &DiskStore{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Save stores the file under products/ with a timestamped name and returns
// the stored path.
func (s *DiskStore) Save(filename string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d_%s", time.Now().Unix(), filepath.Base(filename))
	stored := filepath.ToSlash(filepath.Join("products", name))

	full := filepath.Join(s.baseDir, filepath.FromSlash(stored))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(full)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(full)
		return "", err
	}
	return stored, nil
}

// Delete removes a stored file. The default sentinel is never deleted.
func (s *DiskStore) Delete(path string) error {
	if path == "" || path == models.DefaultImagePath {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(path)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// URL resolves a stored path to its public address, falling back to the
// default image when nothing is stored.
func (s *DiskStore) URL(path string) string {
	if path == "" {
		path = models.DefaultImagePath
	}
	return s.baseURL + "/storage/" + path
}
