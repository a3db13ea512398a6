package middlewares

import (
	"net/http"

	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/utils"
	"github.com/gin-gonic/gin"
)

// RequireRole must run after JWT.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := utils.AuthorizeRole(c.GetString(RoleKey), roles...); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Not authorized"})
			return
		}
		c.Next()
	}
}
