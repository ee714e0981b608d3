package middleware

import (
	"net/http"
	"strings"

	"inventario/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys populated by RequireAuth
const (
	CtxUserID    = "userID"
	CtxUserEmail = "userEmail"
	CtxUserName  = "userName"
	CtxUserRole  = "userRole"
)

func parseBearer(c *gin.Context, secret []byte) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Falta el encabezado de autorización"))
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Formato de autorización inválido. Se espera 'Bearer <token>'"))
		return nil, false
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Token inválido"))
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Token inválido"))
		return nil, false
	}
	return claims, true
}

func setClaims(c *gin.Context, claims jwt.MapClaims) {
	c.Set(CtxUserID, claims["sub"])
	c.Set(CtxUserEmail, claims["email"])
	c.Set(CtxUserName, claims["name"])
	c.Set(CtxUserRole, claims["role"])
}

// RequireAuth validates the bearer token and stores its claims in the context.
// Runs before any handler, so unauthenticated requests never touch the database.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, secret)
		if !ok {
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}

// RequireRole validates the bearer token and additionally checks the account
// role against allowedRoles.
func RequireRole(secret []byte, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, secret)
		if !ok {
			return
		}

		role, _ := claims["role"].(string)
		allowed := false
		for _, r := range allowedRoles {
			if role == r {
				allowed = true
				break
			}
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Acceso denegado: permisos insuficientes"))
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}
