package middleware

import (
	"net/http"
	"strings"

	"vtc-booking/internal/services"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// RequireAdmin guards admin endpoints. A missing credential is a 401, an
// invalid or expired one a 403, mirroring the public contract.
func RequireAdmin(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Token d'accès requis",
			})
			return
		}

		principal, err := auth.Authenticate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Token invalide",
			})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// GetPrincipal returns the authenticated operator for the request, when
// RequireAdmin let it through.
func GetPrincipal(c *gin.Context) (services.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return services.Principal{}, false
	}
	p, ok := v.(services.Principal)
	return p, ok
}
