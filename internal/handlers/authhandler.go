package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobhub/jobhub-api/internal/auth"
	"github.com/jobhub/jobhub-api/internal/dtos"
)

// AuthHandler issues and clears the session cookie.
type AuthHandler struct {
	Issuer     *auth.TokenIssuer
	Production bool
	Logger     *zap.SugaredLogger
}

// NewAuthHandler creates the handler with dependencies.
func NewAuthHandler(issuer *auth.TokenIssuer, production bool, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		Issuer:     issuer,
		Production: production,
		Logger:     logger,
	}
}

// IssueToken is the POST /jwt endpoint: it signs a session token for the
// posted identity and delivers it as an HTTP-only cookie.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req dtos.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	token, err := h.Issuer.IssueToken(req.Email)
	if err != nil {
		h.Logger.Errorw("failed to issue session token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	auth.SetSessionCookie(c, token, h.Production)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout is the POST /logout endpoint: it clears the session cookie. There
// is no server-side session to revoke.
func (h *AuthHandler) Logout(c *gin.Context) {
	auth.ClearSessionCookie(c, h.Production)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
