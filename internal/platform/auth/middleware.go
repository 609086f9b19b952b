package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"bunkmeter-backend/internal/platform/apierr"
)

const (
	CtxClassIDKey = "class_id"
	CtxRoleKey    = "role"
)

// RequireAuth verifies "Authorization: Bearer <token>" and stores the
// token's class and role in the gin context.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			abort(c, http.StatusUnauthorized, apierr.CodeUnauthenticated, "missing Authorization header")
			return
		}

		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abort(c, http.StatusUnauthorized, apierr.CodeUnauthenticated, "invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(parts[1])
		if tokenStr == "" {
			abort(c, http.StatusUnauthorized, apierr.CodeUnauthenticated, "empty token")
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
		if err != nil || token == nil || !token.Valid {
			abort(c, http.StatusUnauthorized, apierr.CodeUnauthenticated, "invalid token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abort(c, http.StatusUnauthorized, apierr.CodeUnauthenticated, "invalid claims")
			return
		}

		sub, err := claims.GetSubject()
		if err != nil || sub == "" {
			abort(c, http.StatusUnauthorized, apierr.CodeUnauthenticated, "invalid sub")
			return
		}

		role, _ := claims["role"].(string)

		c.Set(CtxClassIDKey, sub)
		c.Set(CtxRoleKey, role)
		c.Next()
	}
}

// RequireClassAdmin lets the request through only when the token is an
// admin token for the class named by the route parameter.
func RequireClassAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRoleKey) != RoleAdmin {
			abort(c, http.StatusForbidden, apierr.CodeForbidden, "admin role required")
			return
		}
		if want := c.Param(param); want != "" && want != c.GetString(CtxClassIDKey) {
			abort(c, http.StatusForbidden, apierr.CodeForbidden, "token is not valid for this class")
			return
		}
		c.Next()
	}
}

// ClassID returns the class the current token was issued for.
func ClassID(c *gin.Context) string {
	return c.GetString(CtxClassIDKey)
}

func abort(c *gin.Context, status int, code apierr.Code, msg string) {
	c.AbortWithStatusJSON(status, apierr.Body(code, msg))
}
