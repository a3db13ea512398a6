package route

import (
	"time"

	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/controller"
	mw "github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/middlewares"
	"github.com/gin-gonic/gin"
)

type Options struct {
	// PublicPath is the URL prefix photos are served under, e.g. /uploads.
	PublicPath string
	// PhotoDir is served statically when set; otherwise photo URLs redirect
	// to presigned bucket URLs.
	PhotoDir     string
	Requests     int
	AuthRequests int
	Window       time.Duration
	DebugPprof   bool
}

// NewRouter builds the engine with the common middleware chain, then any
// extra middleware, then every route.
func NewRouter(h *controller.Handler, opts Options, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), mw.RequestID())
	router.Use(extra...)

	rateLimit := mw.NewRateLimiter(opts.Requests, opts.Window)
	router.Use(rateLimit.Middleware())

	Unprotected(router, h, opts)
	Protected(router, h, opts)
	return router
}
