package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestPIN(t *testing.T) {
	hash, err := HashPIN("2468")
	if err != nil {
		t.Fatal(err)
	}
	if err := CheckPIN(hash, "2468"); err != nil {
		t.Errorf("correct pin rejected: %v", err)
	}
	if err := CheckPIN(hash, "1357"); err != ErrPINMismatch {
		t.Errorf("wrong pin: %v", err)
	}
}

func protected(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/classes/:class_id/x", RequireAuth(secret), RequireClassAdmin("class_id"), func(c *gin.Context) {
		c.String(http.StatusOK, ClassID(c))
	})
	return r
}

func get(r http.Handler, path, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMiddleware(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	r := protected(issuer.Secret())
	token, err := issuer.Issue("c1")
	if err != nil {
		t.Fatal(err)
	}

	w := get(r, "/classes/c1/x", "Bearer "+token)
	if w.Code != http.StatusOK || w.Body.String() != "c1" {
		t.Errorf("valid token: %d %s", w.Code, w.Body.String())
	}

	tests := []struct {
		name  string
		path  string
		authz string
		want  int
	}{
		{"missing header", "/classes/c1/x", "", http.StatusUnauthorized},
		{"wrong scheme", "/classes/c1/x", "Basic " + token, http.StatusUnauthorized},
		{"garbage", "/classes/c1/x", "Bearer nope", http.StatusUnauthorized},
		{"other class", "/classes/c2/x", "Bearer " + token, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := get(r, tt.path, tt.authz); w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestMiddlewareRejectsForeignTokens(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	r := protected(issuer.Secret())

	otherKey, _ := NewIssuer("other", time.Hour).Issue("c1")
	if w := get(r, "/classes/c1/x", "Bearer "+otherKey); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong key: %d", w.Code)
	}

	expired := NewIssuer("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _ := expired.Issue("c1")
	if w := get(r, "/classes/c1/x", "Bearer "+old); w.Code != http.StatusUnauthorized {
		t.Errorf("expired token: %d", w.Code)
	}

	noRole, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "c1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(issuer.Secret())
	if w := get(r, "/classes/c1/x", "Bearer "+noRole); w.Code != http.StatusForbidden {
		t.Errorf("token without admin role: %d", w.Code)
	}
}
