package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adminrec/internal/domain/auth"
)

func TestAuthAttachesUser(t *testing.T) {
	token, err := auth.GenerateToken("secret", 12345678, auth.RoleAdmin, "Ana García", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	var got auth.UserContext
	var found bool
	handler := Auth("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = GetUser(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/employees/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !found {
		t.Fatal("expected user in context")
	}
	if got.DNI != 12345678 || got.Role != auth.RoleAdmin {
		t.Fatalf("unexpected user context: %+v", got)
	}
}

func TestAuthIgnoresInvalidToken(t *testing.T) {
	var found bool
	handler := Auth("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found = GetUser(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/employees/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if found {
		t.Fatal("expected no user for invalid token")
	}
}

func TestRequirePermission(t *testing.T) {
	protected := RequirePermission(auth.PermManageEmployees)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// no user at all
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/employees/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	// employee role lacks the permission
	token, _ := auth.GenerateToken("secret", 1234567, auth.RoleEmployee, "Juan Pérez", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/api/employees/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	Auth("secret")(protected).ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	// admin passes
	token, _ = auth.GenerateToken("secret", 1234567, auth.RoleAdmin, "Ana García", time.Hour)
	req = httptest.NewRequest(http.MethodGet, "/api/employees/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	Auth("secret")(protected).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
