package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func limitContext(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestParseLimitDefault(t *testing.T) {
	limit, err := parseLimit(limitContext(""))
	if err != nil {
		t.Fatalf("parseLimit failed: %v", err)
	}
	if limit != 100 {
		t.Errorf("default limit = %d, want 100", limit)
	}
}

func TestParseLimitCeiling(t *testing.T) {
	if limit, err := parseLimit(limitContext("limit=1000")); err != nil || limit != 1000 {
		t.Errorf("limit=1000: got %d, %v", limit, err)
	}
	if _, err := parseLimit(limitContext("limit=1001")); err == nil {
		t.Error("limit=1001 should be rejected, not clamped")
	}
}

func TestParseLimitRejectsInvalid(t *testing.T) {
	for _, q := range []string{"limit=abc", "limit=0", "limit=-5", "limit=1.5"} {
		if _, err := parseLimit(limitContext(q)); err == nil {
			t.Errorf("%s should be rejected", q)
		}
	}
}
