package route

import (
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/controller"
	mw "github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/middlewares"
	"github.com/gin-gonic/gin"
)

func Unprotected(router *gin.Engine, h *controller.Handler, opts Options) {
	router.GET("/", h.Root)
	router.GET("/health", h.HealthCheck)

	authLimit := mw.AuthRateLimit(opts.AuthRequests, opts.Window)

	api := router.Group("/api")
	api.POST("/auth/register", authLimit, h.Register)
	api.POST("/auth/login", authLimit, h.Login)
	api.GET("/resources", h.ListResources)
	api.POST("/resources", h.AddResource)
	api.GET("/photos", h.ListPhotos)

	photoPath := opts.PublicPath + "/photos"
	if opts.PhotoDir != "" {
		router.Static(photoPath, opts.PhotoDir)
	} else {
		router.GET(photoPath+"/:filename", h.ServeSignedPhoto)
	}
}
