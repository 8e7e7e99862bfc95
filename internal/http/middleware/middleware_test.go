package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ibrac/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeVerifier map[string]services.Claims

func (f fakeVerifier) Verify(token string) (services.Claims, error) {
	c, ok := f[token]
	if !ok {
		return services.Claims{}, errors.New("token inválido")
	}
	return c, nil
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v := fakeVerifier{
		"op":  {UserID: 2, Role: "operador"},
		"fin": {UserID: 3, Role: "financeiro"},
	}
	r.Use(RequestID(), Auth(v), RequirePermission())
	ok := func(c *gin.Context) {
		uid, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user": uid})
	}
	r.GET("/api/health", ok)
	r.GET("/api/financeiro/resumo", ok)
	r.POST("/api/entradas", ok)
	r.GET("/api/users", RequireRoles("admin"), ok)
	return r
}

func do(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthAndPermissions(t *testing.T) {
	r := newEngine()

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/health", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/financeiro/resumo", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/financeiro/resumo", "forged").Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/api/financeiro/resumo", "op").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/financeiro/resumo", "fin").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/entradas", "op").Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodPost, "/api/entradas", "fin").Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/api/users", "op").Code)
}

func TestRequestIDHeader(t *testing.T) {
	r := newEngine()
	w := do(r, http.MethodGet, "/api/health", "")
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
