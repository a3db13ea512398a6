package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Disk stores photos under <root>/photos. The root is also what the static
// handler serves.
type Disk struct {
	root string
}

func NewDisk(root string) *Disk {
	return &Disk{root: root}
}

func (d *Disk) Root() string {
	return d.root
}

// PhotoDir is the directory photo files are written to.
func (d *Disk) PhotoDir() string {
	return filepath.Join(d.root, PhotosPrefix)
}

// Save copies body into a hidden temp file and renames it into place, so a
// failed copy never leaves a partial photo behind.
func (d *Disk) Save(_ context.Context, name string, body io.Reader, _ int64, _ string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}

	dir := d.PhotoDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	tempFile, err := os.CreateTemp(dir, ".incoming-*")
	if err != nil {
		return "", err
	}
	tempPath := tempFile.Name()
	defer func() {
		if tempPath != "" {
			_ = os.Remove(tempPath)
		}
	}()

	if _, err := io.Copy(tempFile, body); err != nil {
		_ = tempFile.Close()
		return "", err
	}
	if err := tempFile.Close(); err != nil {
		return "", err
	}

	finalPath := filepath.Join(dir, name)
	if err := os.Rename(tempPath, finalPath); err != nil {
		return "", err
	}
	tempPath = ""

	if err := os.Chmod(finalPath, 0o644); err != nil {
		_ = os.Remove(finalPath)
		return "", err
	}
	return finalPath, nil
}

func (d *Disk) Remove(_ context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(d.PhotoDir(), name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
