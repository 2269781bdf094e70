package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"authhub/pkg/utils"
)

// JWTAuthMiddleware validates the bearer access token statelessly:
// signature and expiry only. Access tokens are never individually
// revocable; logout only blacklists the refresh token.
func JWTAuthMiddleware(secret []byte) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenString, secret)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// A refresh token must not open authenticated endpoints
		if claims.TokenType != utils.TokenTypeAccess {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Pass caller identity to the next handler
		c.Set("account_id", claims.Subject)
		c.Set("role", claims.Role)
		c.Set("staff", claims.Staff)
		c.Next()
	}
}
