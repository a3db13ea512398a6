package route

import (
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/controller"
	mw "github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/middlewares"
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/models"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

func Protected(router *gin.Engine, h *controller.Handler, opts Options) {
	protected := router.Group("/api")

	protected.Use(mw.JWT(h.Auth))
	protected.GET("/auth/me", h.Me)
	protected.PUT("/auth/profile", h.UpdateProfile)
	protected.POST("/photos/upload", h.UploadPhoto)
	protected.GET("/photos/my-photos", h.MyPhotos)
	protected.DELETE("/photos/:id", h.DeletePhoto)

	if opts.DebugPprof {
		admin := router.Group("", mw.JWT(h.Auth), mw.RequireRole(models.RoleAdmin))
		pprof.RouteRegister(admin)
	}
}
