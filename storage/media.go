package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalMediaStore persists uploaded images on the local filesystem under a
// per-property directory and serves them under the /media URL prefix.
type LocalMediaStore struct {
	root    string
	baseURL string
}

// NewLocalMediaStore creates a media store rooted at dir
func NewLocalMediaStore(dir string) (*LocalMediaStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &LocalMediaStore{root: dir, baseURL: "/media"}, nil
}

// Root returns the directory uploads are stored in
func (s *LocalMediaStore) Root() string {
	return s.root
}

// Save stores an uploaded file keyed by property id under a generated unique
// filename and returns the URL it will be served from
func (s *LocalMediaStore) Save(propertyID uint, filename string, file io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.NewString() + ext

	dir := filepath.Join(s.root, "properties", fmt.Sprint(propertyID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return fmt.Sprintf("%s/properties/%d/%s", s.baseURL, propertyID, name), nil
}
