package handlers_test

import (
	"RealEstateAPI/models"
	"net/http"
	"testing"
	"time"
)

func TestAuditLogFilters(t *testing.T) {
	e := newTestServer(t, "audit_logs")

	record := func(id, uid, action, resourceType, resourceID string) {
		t.Helper()
		rec := doRequest(t, e, http.MethodPost, "/api/audit-logs", map[string]interface{}{
			"log_id":            id,
			"user_firebase_uid": uid,
			"action":            action,
			"resource_type":     resourceType,
			"resource_id":       resourceID,
			"metadata":          map[string]interface{}{"source": "test"},
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("record %s: status %d, body %s", id, rec.Code, rec.Body.String())
		}
		time.Sleep(2 * time.Millisecond)
	}

	record("log-1", "admin-1", "suspend", "user", "buyer-1")
	record("log-2", "admin-1", "verify", "document", "doc-1")
	record("log-3", "admin-2", "suspend", "user", "buyer-2")

	cases := []struct {
		query string
		want  int
	}{
		{"", 3},
		{"?user_firebase_uid=admin-1", 2},
		{"?action=suspend", 2},
		{"?resource_type=document", 1},
		{"?user_firebase_uid=admin-1&action=suspend", 1},
	}
	for _, tc := range cases {
		rec := doRequest(t, e, http.MethodGet, "/api/audit-logs"+tc.query, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("list %q: status %d", tc.query, rec.Code)
		}
		var logs []models.AuditLog
		decodeBody(t, rec, &logs)
		if len(logs) != tc.want {
			t.Errorf("list %q returned %d entries, want %d", tc.query, len(logs), tc.want)
		}
	}

	rec := doRequest(t, e, http.MethodGet, "/api/audit-logs", nil)
	var logs []models.AuditLog
	decodeBody(t, rec, &logs)
	if logs[0].LogID != "log-3" || logs[2].LogID != "log-1" {
		t.Errorf("order = [%s %s %s], want newest first", logs[0].LogID, logs[1].LogID, logs[2].LogID)
	}
}

func TestAuditLogMetadataDefaultsEmpty(t *testing.T) {
	e := newTestServer(t, "audit_logs")

	rec := doRequest(t, e, http.MethodPost, "/api/audit-logs", map[string]interface{}{
		"log_id":            "log-4",
		"user_firebase_uid": "admin-1",
		"action":            "ban",
		"resource_type":     "user",
		"resource_id":       "buyer-3",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status %d, body %s", rec.Code, rec.Body.String())
	}
	var entry models.AuditLog
	decodeBody(t, rec, &entry)
	if entry.Metadata == nil || len(entry.Metadata) != 0 {
		t.Errorf("metadata = %v, want {}", entry.Metadata)
	}

	rec = doRequest(t, e, http.MethodPost, "/api/audit-logs", map[string]interface{}{
		"log_id":            "log-4",
		"user_firebase_uid": "admin-1",
		"action":            "ban",
		"resource_type":     "user",
		"resource_id":       "buyer-4",
	})
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate log_id: status %d, want 409", rec.Code)
	}
}
