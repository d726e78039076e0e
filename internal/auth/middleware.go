package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// principalKey is the gin context key holding the verified Principal
const principalKey = "auth.principal"

// Middleware returns a gin handler that verifies the bearer token and the
// caller's email domain before the request reaches any business handler.
func Middleware(verifier TokenVerifier, allowedDomains []string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortAuth(c, &AuthError{
				Code:    "MISSING_AUTH_HEADER",
				Message: "Authorization header is missing",
				Status:  http.StatusUnauthorized,
			})
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || scheme != "Bearer" || token == "" {
			abortAuth(c, &AuthError{
				Code:    "INVALID_AUTH_FORMAT",
				Message: "Invalid authorization format",
				Status:  http.StatusUnauthorized,
			})
			return
		}

		principal, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Warn("Token verification failed", zap.Error(err))
			abortAuth(c, &AuthError{
				Code:    "INVALID_TOKEN",
				Message: "Token verification failed",
				Status:  http.StatusUnauthorized,
			})
			return
		}

		if !DomainAllowed(principal.Email, allowedDomains) {
			logger.Warn("Rejected caller from unauthorized domain",
				zap.String("email", principal.Email))
			abortAuth(c, &AuthError{
				Code:    "UNAUTHORIZED_DOMAIN",
				Message: "Unauthorized email domain",
				Status:  http.StatusForbidden,
			})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// PrincipalFrom returns the verified caller stored by Middleware, if any
func PrincipalFrom(c *gin.Context) (*Principal, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	principal, ok := value.(*Principal)
	return principal, ok
}

func abortAuth(c *gin.Context, err *AuthError) {
	c.AbortWithStatusJSON(err.Status, gin.H{
		"code":    err.Code,
		"message": err.Message,
	})
}
