// Package controller holds the gin handlers of the EmpowerHer API.
package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/middlewares"
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/service"
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/storage"
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/store"
	"github.com/gin-gonic/gin"
)

const requestTimeout = 10 * time.Second

type Handler struct {
	Auth      *service.AuthService
	Resources *service.ResourceService
	Gallery   *service.GalleryService
	Uploads   *service.UploadPipeline
	Files     storage.FileStore
	Health    store.Pinger
}

func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Backend is running!")
}

func (h *Handler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.Health.Ping(ctx); err != nil {
		middlewares.LogError(c, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

// respondError writes the client-safe message of err and logs the cause.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch service.KindOf(err) {
	case service.KindValidation:
		status = http.StatusBadRequest
	case service.KindAuth:
		status = http.StatusUnauthorized
	case service.KindForbidden:
		status = http.StatusForbidden
	case service.KindNotFound:
		status = http.StatusNotFound
	}

	message := "Server error"
	var appErr *service.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	if status == http.StatusInternalServerError {
		middlewares.LogError(c, err)
	}
	c.JSON(status, gin.H{"message": message})
}
