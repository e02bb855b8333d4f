package handlers_test

import (
	"RealEstateAPI/models"
	"RealEstateAPI/utils"
	"net/http"
	"testing"
)

func adminToken(t *testing.T, role string) string {
	t.Helper()
	t.Setenv("JWT_SECRET", "handler-test-secret")
	token, err := utils.GenerateJWT("admin-1", "admin@example.com", role)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

func TestAdminRoutesRequireToken(t *testing.T) {
	e := newTestServer(t, "users")

	rec := doRequest(t, e, http.MethodPut, "/api/admin/users/buyer-1/suspend?is_suspended=true", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status %d, want 401", rec.Code)
	}

	rec = doAuthRequest(t, e, http.MethodPut, "/api/admin/users/buyer-1/suspend?is_suspended=true", nil, "not-a-jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status %d, want 401", rec.Code)
	}

	token := adminToken(t, string(models.RoleBuyer))
	rec = doAuthRequest(t, e, http.MethodPut, "/api/admin/users/buyer-1/suspend?is_suspended=true", nil, token)
	if rec.Code != http.StatusForbidden {
		t.Errorf("non-admin token: status %d, want 403", rec.Code)
	}
}

func TestAdminSuspendAndBan(t *testing.T) {
	e := newTestServer(t, "users")
	token := adminToken(t, string(models.RoleAdmin))

	rec := doRequest(t, e, http.MethodPost, "/api/users", map[string]interface{}{
		"firebase_uid": "buyer-1",
		"email":        "buyer@example.com",
		"name":         "Buyer One",
		"role":         "buyer",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed user: status %d, body %s", rec.Code, rec.Body.String())
	}

	steps := []struct {
		target  string
		message string
	}{
		{"/api/admin/users/buyer-1/suspend?is_suspended=true", "User suspended"},
		{"/api/admin/users/buyer-1/suspend?is_suspended=false", "User unsuspended"},
		{"/api/admin/users/buyer-1/ban?is_banned=true", "User banned"},
		{"/api/admin/users/buyer-1/ban?is_banned=false", "User unbanned"},
	}
	for _, step := range steps {
		rec = doAuthRequest(t, e, http.MethodPut, step.target, nil, token)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d, body %s", step.target, rec.Code, rec.Body.String())
		}
		var body map[string]string
		decodeBody(t, rec, &body)
		if body["message"] != step.message {
			t.Errorf("%s: message %q, want %q", step.target, body["message"], step.message)
		}
	}

	rec = doRequest(t, e, http.MethodGet, "/api/users/buyer-1", nil)
	var user models.User
	decodeBody(t, rec, &user)
	if user.IsSuspended || user.IsBanned {
		t.Errorf("flags should be cleared: suspended=%v banned=%v", user.IsSuspended, user.IsBanned)
	}

	rec = doAuthRequest(t, e, http.MethodPut, "/api/admin/users/buyer-1/suspend", nil, token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing is_suspended: status %d, want 400", rec.Code)
	}
	rec = doAuthRequest(t, e, http.MethodPut, "/api/admin/users/buyer-1/ban?is_banned=maybe", nil, token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("non-boolean is_banned: status %d, want 400", rec.Code)
	}
	rec = doAuthRequest(t, e, http.MethodPut, "/api/admin/users/no-such-user/suspend?is_suspended=true", nil, token)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown user: status %d, want 404", rec.Code)
	}
}

func TestAdminAnalyticsCounts(t *testing.T) {
	e := newTestServer(t, "users", "properties", "listings", "verification_documents", "property_comparisons")
	token := adminToken(t, string(models.RoleAdmin))

	for _, u := range []string{"buyer-1", "lister-1"} {
		doRequest(t, e, http.MethodPost, "/api/users", map[string]interface{}{
			"firebase_uid": u,
			"email":        u + "@example.com",
			"name":         u,
			"role":         "buyer",
		})
	}
	doRequest(t, e, http.MethodPost, "/api/properties", propertyPayload("prop-a1", 250000, "Springfield", "residential"))
	doRequest(t, e, http.MethodPost, "/api/listings", map[string]interface{}{
		"listing_id":          "lst-a1",
		"property_id":         "prop-a1",
		"lister_firebase_uid": "lister-1",
	})
	doRequest(t, e, http.MethodPost, "/api/listings", map[string]interface{}{
		"listing_id":          "lst-a2",
		"property_id":         "prop-a1",
		"lister_firebase_uid": "lister-1",
	})
	doRequest(t, e, http.MethodPut, "/api/listings/lst-a2", map[string]interface{}{"status": "active"})
	doRequest(t, e, http.MethodPost, "/api/verification-documents", map[string]interface{}{
		"document_id":       "doc-a1",
		"user_firebase_uid": "lister-1",
		"document_type":     "identity_proof",
		"document_url":      "https://cdn.example.com/doc-a1.pdf",
	})

	rec := doAuthRequest(t, e, http.MethodGet, "/api/admin/analytics", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("analytics: status %d, body %s", rec.Code, rec.Body.String())
	}
	var stats map[string]int64
	decodeBody(t, rec, &stats)

	want := map[string]int64{
		"total_users":           2,
		"total_properties":      1,
		"total_listings":        2,
		"active_listings":       1,
		"pending_verifications": 1,
	}
	for key, value := range want {
		if stats[key] != value {
			t.Errorf("%s = %d, want %d", key, stats[key], value)
		}
	}
}
