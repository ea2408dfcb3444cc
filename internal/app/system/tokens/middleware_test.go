package tokens_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/camphub/camphub/internal/app/system/tokens"
)

func gatedHandler(t *testing.T, svc *tokens.Service, executed *bool) http.Handler {
	t.Helper()
	return svc.RequireBearer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*executed = true
		claims, ok := tokens.FromContext(r.Context())
		if !ok {
			t.Error("claims missing from context on gated handler")
		} else if claims.Email == "" {
			t.Error("empty email claim on gated handler")
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func assertUnauthorized(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	var body struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if !body.Error {
		t.Error("expected error:true in body")
	}
	if body.Message != "unauthorized access" {
		t.Errorf("message: got %q, want %q", body.Message, "unauthorized access")
	}
}

func TestRequireBearer_MissingHeader(t *testing.T) {
	svc := tokens.New("secret", "camphub", time.Hour)
	executed := false
	handler := gatedHandler(t, svc, &executed)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assertUnauthorized(t, rec)
	if executed {
		t.Error("handler ran despite missing header")
	}
}

func TestRequireBearer_BadScheme(t *testing.T) {
	svc := tokens.New("secret", "camphub", time.Hour)
	executed := false
	handler := gatedHandler(t, svc, &executed)

	signed, err := svc.Issue("student@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Basic "+signed)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assertUnauthorized(t, rec)
	if executed {
		t.Error("handler ran despite wrong scheme")
	}
}

func TestRequireBearer_ExpiredToken(t *testing.T) {
	expiredSigner := tokens.New("secret", "camphub", -time.Minute)
	signed, err := expiredSigner.Issue("student@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	svc := tokens.New("secret", "camphub", time.Hour)
	executed := false
	handler := gatedHandler(t, svc, &executed)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assertUnauthorized(t, rec)
	if executed {
		t.Error("handler ran despite expired token")
	}
}

func TestRequireBearer_ValidToken(t *testing.T) {
	svc := tokens.New("secret", "camphub", time.Hour)
	executed := false
	handler := gatedHandler(t, svc, &executed)

	signed, err := svc.Issue("student@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if !executed {
		t.Error("handler did not run with valid token")
	}
}
