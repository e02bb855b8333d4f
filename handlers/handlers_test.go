package handlers_test

import (
	"RealEstateAPI/config"
	"RealEstateAPI/routes"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
)

// Handler tests run against a real MongoDB, in the same spirit as the rest of
// the suite: set MONGO_URL to enable them, leave it unset to skip.

var connectOnce sync.Once

// newTestServer connects once, drops the named collections, recreates the
// indexes and returns an echo instance with all routes registered.
func newTestServer(t *testing.T, collections ...string) *echo.Echo {
	t.Helper()
	if os.Getenv("MONGO_URL") == "" {
		t.Skip("MONGO_URL not set; skipping integration test")
	}

	connectOnce.Do(func() {
		if os.Getenv("DB_NAME") == "" {
			os.Setenv("DB_NAME", "real_estate_test")
		}
		config.ConnectDB()
	})

	ctx := context.Background()
	for _, name := range collections {
		if err := config.GetCollection(name).Drop(ctx); err != nil {
			t.Fatalf("failed to drop %s: %v", name, err)
		}
	}
	if err := config.EnsureIndexes(ctx); err != nil {
		t.Fatalf("failed to create indexes: %v", err)
	}

	e := echo.New()
	routes.RegisterRoutes(e)
	return e
}

func doRequest(t *testing.T, e *echo.Echo, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return doAuthRequest(t, e, method, target, body, "")
}

func doAuthRequest(t *testing.T, e *echo.Echo, method, target string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dest); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}
