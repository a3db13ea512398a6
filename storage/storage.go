// Package storage keeps the bytes of uploaded photos.
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
)

// PhotosPrefix is the directory (disk) or key prefix (buckets) holding photos.
const PhotosPrefix = "photos"

var ErrInvalidName = errors.New("storage: invalid file name")

type FileStore interface {
	// Save stores body under name and returns the storage path or key.
	Save(ctx context.Context, name string, body io.Reader, size int64, contentType string) (string, error)
	// Remove deletes name. A file that is already gone is not an error.
	Remove(ctx context.Context, name string) error
}

// URLSigner is implemented by bucket drivers that serve files through
// presigned URLs instead of the static file handler.
type URLSigner interface {
	SignedURL(ctx context.Context, name string) (string, error)
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || path.Base(name) != name {
		return ErrInvalidName
	}
	return nil
}

func objectKey(name string) string {
	return PhotosPrefix + "/" + name
}
