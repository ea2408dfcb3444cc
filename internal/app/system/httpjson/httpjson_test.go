package httpjson_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/camphub/camphub/internal/app/system/httpjson"
)

func TestError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	httpjson.Error(rec, http.StatusUnauthorized, "unauthorized access")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q", ct)
	}
	body := strings.TrimSpace(rec.Body.String())
	want := `{"error":true,"message":"unauthorized access"}`
	if body != want {
		t.Errorf("body: got %s, want %s", body, want)
	}
}

func TestDecode(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"price": 19.99}`))
	var body struct {
		Price float64 `json:"price"`
	}
	if err := httpjson.Decode(req, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Price != 19.99 {
		t.Errorf("price: got %v, want 19.99", body.Price)
	}
}

func TestDecode_Malformed(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"price":`))
	var body struct{}
	if err := httpjson.Decode(req, &body); err == nil {
		t.Fatal("expected error for truncated JSON")
	}
}
