package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// userClaimsKey is the gin context key under which the session gate stores
// the verified claims.
const userClaimsKey = "auth_user"

// Middleware guards routes with session verification and resource-ownership
// checks.
type Middleware struct {
	issuer *TokenIssuer
	logger *zap.SugaredLogger
}

// NewMiddleware creates the auth middleware with its dependencies.
func NewMiddleware(issuer *TokenIssuer, logger *zap.SugaredLogger) *Middleware {
	return &Middleware{
		issuer: issuer,
		logger: logger,
	}
}

// RequireSession verifies the session cookie before the handler runs.
// Requests without a valid, unexpired token are rejected with 401 and never
// reach handler logic or the store.
func (m *Middleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		claims, err := m.issuer.VerifyToken(token)
		if err != nil {
			m.logger.Debugw("token verification failed", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		c.Set(userClaimsKey, claims)
		c.Next()
	}
}

// RequireOwnership enforces that the caller only queries resources tagged
// with their own identity: if the email query parameter names someone else,
// the request is rejected with 403 before any data access. Runs after
// RequireSession.
func (m *Middleware) RequireOwnership() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		if email := c.Query("email"); email != "" && email != claims.Email {
			m.logger.Infow("ownership check rejected request",
				"authenticated", claims.Email, "requested", email)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Next()
	}
}

// ClaimsFromContext returns the verified session claims set by
// RequireSession, or nil when the request was not gated.
func ClaimsFromContext(c *gin.Context) *Claims {
	v, ok := c.Get(userClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*Claims)
	return claims
}
