package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test_secret")

func signToken(t *testing.T, secret []byte, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "0b7f5cf1-2f4e-4c7a-9dc4-6d2e9f3a1b22",
		"email": "ana@example.com",
		"name":  "Ana Pérez",
		"role":  role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func newProtectedRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"name": c.GetString(CtxUserName)})
	})
	return router
}

func perform(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingHeader(t *testing.T) {
	router := newProtectedRouter(RequireAuth(testSecret))
	w := perform(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Falta el encabezado de autorización")
}

func TestRequireAuthBadScheme(t *testing.T) {
	router := newProtectedRouter(RequireAuth(testSecret))
	w := perform(router, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Formato de autorización inválido")
}

func TestRequireAuthWrongSecret(t *testing.T) {
	router := newProtectedRouter(RequireAuth(testSecret))
	token := signToken(t, []byte("another_secret"), "operador")
	w := perform(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token inválido")
}

func TestRequireAuthExpiredToken(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "x",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString(testSecret)
	require.NoError(t, err)

	router := newProtectedRouter(RequireAuth(testSecret))
	w := perform(router, "Bearer "+signed)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthForwardsClaims(t *testing.T) {
	router := newProtectedRouter(RequireAuth(testSecret))
	w := perform(router, "Bearer "+signToken(t, testSecret, "operador"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ana Pérez")
}

func TestRequireRoleRejectsInsufficientRole(t *testing.T) {
	router := newProtectedRouter(RequireRole(testSecret, "admin"))
	w := perform(router, "Bearer "+signToken(t, testSecret, "operador"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Acceso denegado")
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	router := newProtectedRouter(RequireRole(testSecret, "admin"))
	w := perform(router, "Bearer "+signToken(t, testSecret, "admin"))
	assert.Equal(t, http.StatusOK, w.Code)
}
