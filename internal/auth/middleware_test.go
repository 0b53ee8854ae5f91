package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// gatedRouter wires RequireSession + RequireOwnership in front of a probe
// handler so tests can tell whether the request got through.
func gatedRouter(t *testing.T, issuer *TokenIssuer, reached *bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mw := NewMiddleware(issuer, zap.NewNop().Sugar())
	r := gin.New()
	r.GET("/gated", mw.RequireSession(), mw.RequireOwnership(), func(c *gin.Context) {
		*reached = true
		c.JSON(http.StatusOK, gin.H{"email": ClaimsFromContext(c).Email})
	})
	return r
}

func TestRequireSessionMissingCookie(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret")
	require.NoError(t, err)

	var reached bool
	r := gatedRouter(t, issuer, &reached)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached, "handler must not run without a session cookie")
}

func TestRequireSessionInvalidToken(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret")
	require.NoError(t, err)

	var reached bool
	r := gatedRouter(t, issuer, &reached)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "tampered.token.value"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
}

func TestRequireSessionValidToken(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret")
	require.NoError(t, err)
	token, err := issuer.IssueToken("a@b.com")
	require.NoError(t, err)

	var reached bool
	r := gatedRouter(t, issuer, &reached)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gated?email=a@b.com", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, reached)
	assert.Contains(t, w.Body.String(), "a@b.com")
}

func TestRequireOwnershipMismatch(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret")
	require.NoError(t, err)
	token, err := issuer.IssueToken("a@b.com")
	require.NoError(t, err)

	var reached bool
	r := gatedRouter(t, issuer, &reached)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gated?email=c@d.com", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, reached, "handler must not run for another identity's resources")
}

func TestRequireOwnershipOmittedParam(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret")
	require.NoError(t, err)
	token, err := issuer.IssueToken("a@b.com")
	require.NoError(t, err)

	var reached bool
	r := gatedRouter(t, issuer, &reached)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, reached)
}

func TestClaimsFromContextUnset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, ClaimsFromContext(c))
}
