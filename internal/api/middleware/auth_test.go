package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func adminProtected(adminKey string) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return AdminAuth(adminKey)(next)
}

func TestAdminAuth_ValidKey(t *testing.T) {
	h := adminProtected("secret-key")

	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set(AdminKeyHeader, "secret-key")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAuth_WrongKey(t *testing.T) {
	h := adminProtected("secret-key")

	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set(AdminKeyHeader, "wrong-key")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "unauthorized")
}

func TestAdminAuth_MissingHeader(t *testing.T) {
	h := adminProtected("secret-key")

	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuth_EmptyConfiguredKeyRejectsEverything(t *testing.T) {
	h := adminProtected("")

	// Пустой настроенный ключ не означает открытый доступ
	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set(AdminKeyHeader, "")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
