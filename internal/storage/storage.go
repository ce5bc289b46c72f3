package storage

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const MaxFileSize = 5 * 1024 * 1024

// Document categories. Each becomes a namespace under the store root.
const (
	CategoryProfile   = "profile"
	CategorySignature = "signatures"
	CategoryAadhar    = "aadhar"
)

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// AllowedType reports whether contentType may be stored under category.
// Profile and signature photos must be images; the identity document
// additionally accepts PDF.
func AllowedType(category, contentType string) bool {
	if imageTypes[contentType] {
		return true
	}
	return category == CategoryAadhar && contentType == "application/pdf"
}

var ErrTooLarge = errors.New("file exceeds maximum size of 5MB")

// Store is the object-storage surface the workflows depend on. Put returns
// the key the blob was stored under; PublicURL resolves a key to a URL a
// browser can fetch.
type Store interface {
	Put(category, fileName, contentType string, data []byte) (string, error)
	Delete(key string) error
	PublicURL(key string) string
}

// DiskStore keeps blobs on the local filesystem and serves them through
// the /files/ route.
type DiskStore struct {
	baseDir string
	baseURL string
}

func NewDiskStore(baseDir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &DiskStore{baseDir: baseDir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *DiskStore) Put(category, fileName, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("file data is empty")
	}
	if len(data) > MaxFileSize {
		return "", ErrTooLarge
	}
	if !AllowedType(category, contentType) {
		return "", fmt.Errorf("content type %q not allowed for %s", contentType, category)
	}

	key := fmt.Sprintf("%s/%d_%s", category, time.Now().UnixMilli(), sanitizeName(fileName))

	dir := filepath.Join(s.baseDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create category dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.baseDir, filepath.FromSlash(key)), data, 0o644); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	return key, nil
}

func (s *DiskStore) Delete(key string) error {
	clean := filepath.Clean(filepath.FromSlash(key))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("invalid blob key %q", key)
	}
	return os.Remove(filepath.Join(s.baseDir, clean))
}

func (s *DiskStore) PublicURL(key string) string {
	return s.baseURL + "/files/" + key
}

// Dir exposes the storage root for the static file route.
func (s *DiskStore) Dir() string {
	return s.baseDir
}

// FileSystem exposes the storage root for serving over HTTP. Directory
// opens are refused so the file route cannot list stored documents.
func (s *DiskStore) FileSystem() http.FileSystem {
	return noDirFS{http.Dir(s.baseDir)}
}

type noDirFS struct {
	fs http.FileSystem
}

func (n noDirFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." || name == ".." {
		name = "file"
	}
	return name
}
