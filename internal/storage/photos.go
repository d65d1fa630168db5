// Package storage persists uploaded pickup photos on disk.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PhotoStore writes uploaded images under the media root, partitioned
// by upload date: task_photos/YYYY/MM/DD/<uuid><ext>. Only the relative
// path is recorded in the database.
type PhotoStore struct {
	mediaRoot string
}

func NewPhotoStore(mediaRoot string) *PhotoStore {
	return &PhotoStore{
		mediaRoot: mediaRoot,
	}
}

// allowed image extensions; anything else falls back to .jpg
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Save writes the image and returns its path relative to the media root.
func (s *PhotoStore) Save(fileName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedExtensions[ext] {
		ext = ".jpg"
	}

	now := time.Now().UTC()
	relDir := filepath.Join("task_photos", now.Format("2006"), now.Format("01"), now.Format("02"))

	absDir := filepath.Join(s.mediaRoot, relDir)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", fmt.Errorf("create photo directory: %w", err)
	}

	name := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(absDir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write photo: %w", err)
	}

	return filepath.ToSlash(filepath.Join(relDir, name)), nil
}

// Path resolves a stored relative path back to an absolute file path.
func (s *PhotoStore) Path(relPath string) string {
	return filepath.Join(s.mediaRoot, filepath.FromSlash(relPath))
}
