package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"aircast/internal/infrastructure/auth"
	"aircast/internal/shared/utils"
)

const userSIDKey = "user_sid"

// Auth validates the Bearer token and stores the recipient identity in
// the request context. Every notification route is recipient-scoped.
func Auth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtService.Verify(parts[1])
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(userSIDKey, claims.UserSID)
		c.Next()
	}
}

// GetUserSID returns the authenticated recipient ID set by Auth.
func GetUserSID(c *gin.Context) string {
	return c.GetString(userSIDKey)
}
