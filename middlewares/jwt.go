package middlewares

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/service"
	"github.com/gin-gonic/gin"
)

const (
	UserIDKey = "userID"
	UserKey   = "user"
	RoleKey   = "role"
)

// JWT resolves the bearer token of each request to an active user. Only the
// Authorization header is read.
func JWT(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		user, err := auth.VerifySession(ctx, tokenString)
		if err != nil {
			status, message := http.StatusUnauthorized, "Invalid or expired token"
			if service.KindOf(err) == service.KindServer {
				status, message = http.StatusInternalServerError, "Server error"
			}
			LogError(c, err)
			c.AbortWithStatusJSON(status, gin.H{"message": message})
			return
		}

		c.Set(UserIDKey, user.ID)
		c.Set(UserKey, user)
		c.Set(RoleKey, user.Role)

		c.Next()
	}
}

// Expecting format: "Bearer <token>"
func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
