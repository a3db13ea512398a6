package controller

import (
	"errors"
	"net/http"

	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/middlewares"
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/models"
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/service"
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/storage"
	"github.com/gin-gonic/gin"
)

// multipartOverhead is allowed on top of the file limit for boundaries and
// the caption field.
const multipartOverhead = 1 << 20

func (h *Handler) ListPhotos(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	photos, err := h.Gallery.ListApproved(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

func (h *Handler) MyPhotos(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	photos, err := h.Gallery.ListOwn(ctx, callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

func (h *Handler) UploadPhoto(c *gin.Context) {
	limit := h.Uploads.MaxBytes() + multipartOverhead
	if c.Request.ContentLength > limit {
		respondError(c, h.Uploads.TooLarge())
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			respondError(c, h.Uploads.TooLarge())
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		default:
			middlewares.LogError(c, err)
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid upload"})
		}
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	ctx, cancel := requestContext(c)
	defer cancel()

	photo, err := h.Uploads.Upload(ctx, service.UploadRequest{
		File:         file,
		Filename:     fileHeader.Filename,
		DeclaredType: fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
		Caption:      c.PostForm("caption"),
		UploaderID:   callerID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Photo uploaded successfully",
		"photo": models.PhotoSummary{
			ID:         photo.ID.Hex(),
			Filename:   photo.Filename,
			Caption:    photo.Caption,
			UploadedAt: photo.CreatedAt,
		},
	})
}

func (h *Handler) DeletePhoto(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.Gallery.Delete(ctx, c.Param("id"), callerID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted successfully"})
}

// ServeSignedPhoto redirects to a short-lived bucket URL. Only used when the
// file store can sign URLs; the disk driver is served statically.
func (h *Handler) ServeSignedPhoto(c *gin.Context) {
	signer, ok := h.Files.(storage.URLSigner)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	url, err := signer.SignedURL(ctx, c.Param("filename"))
	if errors.Is(err, storage.ErrInvalidName) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, url)
}
