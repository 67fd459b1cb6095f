package objectstore

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// ObjectStorage is the signed-URL upload contract for logo images. The blob
// store itself is an external collaborator; the application only hands out
// upload URLs and normalizes uploaded URLs into opaque object paths.
type ObjectStorage interface {
	// UploadURL returns a URL the client can PUT the object to.
	UploadURL(ctx context.Context) (string, error)

	// NormalizePath converts a raw uploaded URL into the object path stored
	// on the litepaper record.
	NormalizePath(rawURL string) string
}

// LocalObjectStorage backs the upload contract with the server's own static
// upload directory, for development and single-node deployments.
type LocalObjectStorage struct {
	baseURL   string
	uploadDir string
}

func NewLocalObjectStorage(baseURL, uploadDir string) *LocalObjectStorage {
	return &LocalObjectStorage{
		baseURL:   strings.TrimRight(baseURL, "/"),
		uploadDir: uploadDir,
	}
}

func (s *LocalObjectStorage) UploadURL(ctx context.Context) (string, error) {
	return fmt.Sprintf("%s/uploads/%s", s.baseURL, uuid.New().String()), nil
}

func (s *LocalObjectStorage) NormalizePath(rawURL string) string {
	// Keep only the object name; the stored path is opaque to the rest of
	// the pipeline.
	name := path.Base(rawURL)
	if name == "." || name == "/" {
		name = "unknown"
	}
	return "/objects/" + name
}
