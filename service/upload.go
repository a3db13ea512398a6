package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"mime"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/models"
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/storage"
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/store"
	"github.com/gabriel-vasile/mimetype"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	sniffLen          = 512
	msgOnlyImages     = "Only image files are allowed"
	genericUploadType = "application/octet-stream"
)

var (
	safeExtension   = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)
	errFileTooLarge = errors.New("file exceeds upload limit")

	// SVG is markup and can carry script when served same-origin.
	scriptableImageTypes = map[string]bool{"image/svg+xml": true}
)

type UploadRequest struct {
	File         io.Reader
	Filename     string
	DeclaredType string
	Size         int64
	Caption      string
	UploaderID   bson.ObjectID
}

// UploadPipeline validates an uploaded image, stores its bytes and records
// its metadata.
type UploadPipeline struct {
	photos   store.PhotoStore
	files    storage.FileStore
	maxBytes int64
	now      func() time.Time
	suffix   func() int64
}

func NewUploadPipeline(photos store.PhotoStore, files storage.FileStore, maxBytes int64) *UploadPipeline {
	return &UploadPipeline{
		photos:   photos,
		files:    files,
		maxBytes: maxBytes,
		now:      time.Now,
		suffix:   func() int64 { return rand.Int63n(1_000_000_000) },
	}
}

func (p *UploadPipeline) MaxBytes() int64 {
	return p.maxBytes
}

// TooLarge is the rejection for a body that exceeds the upload limit.
func (p *UploadPipeline) TooLarge() error {
	return validationError(fmt.Sprintf("File too large (max %s)", formatLimit(p.maxBytes)))
}

func (p *UploadPipeline) Upload(ctx context.Context, req UploadRequest) (*models.Photo, error) {
	if req.File == nil {
		return nil, validationError("No file uploaded")
	}
	if req.Size > p.maxBytes {
		return nil, p.TooLarge()
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(req.File, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, validationError("Error reading file")
	}
	if n == 0 {
		return nil, validationError("File is empty")
	}
	head = head[:n]

	detected := mimetype.Detect(head)
	mimeType := normalizeMimeType(detected.String())
	if !isImage(mimeType) || scriptableImageTypes[mimeType] {
		return nil, validationError(msgOnlyImages)
	}
	if declared := normalizeMimeType(req.DeclaredType); declared != "" && declared != genericUploadType &&
		(!isImage(declared) || scriptableImageTypes[declared]) {
		return nil, validationError(msgOnlyImages)
	}

	filename := p.generateFilename(req.Filename, mimeType, detected.Extension())
	body := &cappedReader{r: io.MultiReader(bytes.NewReader(head), req.File), max: p.maxBytes}

	size := req.Size
	if size <= 0 {
		size = -1
	}
	path, err := p.files.Save(ctx, filename, body, size, mimeType)
	if errors.Is(err, errFileTooLarge) {
		return nil, p.TooLarge()
	}
	if err != nil {
		return nil, serverError("Server error during upload", err)
	}

	photo := &models.Photo{
		Filename:     filename,
		OriginalName: originalName(req.Filename),
		MimeType:     mimeType,
		Size:         body.n,
		Path:         path,
		Caption:      strings.TrimSpace(req.Caption),
		UploadedBy:   req.UploaderID,
		IsApproved:   true,
		CreatedAt:    p.now(),
	}
	if err := p.photos.Create(ctx, photo); err != nil {
		if removeErr := p.files.Remove(ctx, filename); removeErr != nil {
			log.Printf("orphaned upload %s could not be removed: %v", filename, removeErr)
		}
		return nil, serverError("Server error during upload", err)
	}
	return photo, nil
}

// generateFilename never reuses the client name. The client extension is kept
// only when it maps to the sniffed type, since the extension decides the
// Content-Type the file is served with.
func (p *UploadPipeline) generateFilename(original, mimeType, detectedExt string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if !safeExtension.MatchString(ext) || !extensionMatches(ext, mimeType) {
		ext = detectedExt
	}
	return fmt.Sprintf("photo-%d-%d%s", p.now().UnixMilli(), p.suffix(), ext)
}

func extensionMatches(ext, mimeType string) bool {
	if detected := mimetype.Lookup(mimeType); detected != nil && detected.Extension() == ext {
		return true
	}
	return normalizeMimeType(mime.TypeByExtension(ext)) == mimeType
}

func originalName(filename string) string {
	name := filepath.Base(strings.TrimSpace(filename))
	switch name {
	case ".", "..", string(filepath.Separator):
		return ""
	}
	return name
}

type cappedReader struct {
	r   io.Reader
	n   int64
	max int64
}

func (c *cappedReader) Read(b []byte) (int, error) {
	n, err := c.r.Read(b)
	c.n += int64(n)
	if c.n > c.max {
		return n, errFileTooLarge
	}
	return n, err
}

func normalizeMimeType(raw string) string {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if separator := strings.Index(normalized, ";"); separator >= 0 {
		normalized = strings.TrimSpace(normalized[:separator])
	}
	return normalized
}

func isImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}

func formatLimit(limit int64) string {
	const mib = 1 << 20
	if limit >= mib && limit%mib == 0 {
		return fmt.Sprintf("%dMB", limit/mib)
	}
	return fmt.Sprintf("%d bytes", limit)
}
