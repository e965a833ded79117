package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ralph-xpert-backend/internal/delivery/http/response"
	"ralph-xpert-backend/internal/domain"
	"ralph-xpert-backend/pkg/auth"
)

// AuthMiddleware guards every admin route. A missing token is 401, a
// token that fails verification (bad signature, expired, wrong shape)
// is 403 — the request never reaches a usecase in either case.
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Token d'accès requis")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Verify(tokenString)
		if err != nil {
			response.Error(c, http.StatusForbidden, "Token invalide")
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUsername), claims.Username)
		c.Set(string(domain.KeyUserRole), claims.Role)
		c.Next()
	}
}
