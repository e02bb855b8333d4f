package handlers_test

import (
	"RealEstateAPI/models"
	"net/http"
	"testing"
	"time"
)

func TestNotificationBroadcastVisibleToAll(t *testing.T) {
	e := newTestServer(t, "notifications")

	notify := func(id string, uid interface{}, title string) {
		t.Helper()
		rec := doRequest(t, e, http.MethodPost, "/api/notifications", map[string]interface{}{
			"notification_id":   id,
			"user_firebase_uid": uid,
			"title":             title,
			"message":           "body",
			"notification_type": "system",
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("notify %s: status %d, body %s", id, rec.Code, rec.Body.String())
		}
		time.Sleep(2 * time.Millisecond)
	}

	notify("ntf-1", "alice", "saved search update")
	notify("ntf-2", nil, "scheduled maintenance")
	notify("ntf-3", "bob", "new message")

	rec := doRequest(t, e, http.MethodGet, "/api/notifications?user_firebase_uid=alice", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: status %d", rec.Code)
	}
	var notifications []models.Notification
	decodeBody(t, rec, &notifications)
	if len(notifications) != 2 {
		t.Fatalf("alice sees %d notifications, want own + broadcast", len(notifications))
	}
	// Newest first, so the broadcast precedes alice's own.
	if notifications[0].NotificationID != "ntf-2" || notifications[1].NotificationID != "ntf-1" {
		t.Errorf("order = [%s %s]", notifications[0].NotificationID, notifications[1].NotificationID)
	}

	rec = doRequest(t, e, http.MethodGet, "/api/notifications?user_firebase_uid=carol", nil)
	decodeBody(t, rec, &notifications)
	if len(notifications) != 1 || notifications[0].NotificationID != "ntf-2" {
		t.Errorf("carol should see only the broadcast, got %d", len(notifications))
	}

	rec = doRequest(t, e, http.MethodGet, "/api/notifications", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing user_firebase_uid: status %d, want 400", rec.Code)
	}
}

func TestNotificationMarkReadIdempotent(t *testing.T) {
	e := newTestServer(t, "notifications")

	rec := doRequest(t, e, http.MethodPost, "/api/notifications", map[string]interface{}{
		"notification_id":   "ntf-4",
		"user_firebase_uid": "alice",
		"title":             "price drop",
		"message":           "a saved listing dropped in price",
		"notification_type": "listing",
	})
	var created models.Notification
	decodeBody(t, rec, &created)
	if created.IsRead {
		t.Error("new notification should be unread")
	}

	for i := 0; i < 2; i++ {
		rec = doRequest(t, e, http.MethodPut, "/api/notifications/ntf-4/read", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("mark read attempt %d: status %d", i+1, rec.Code)
		}
	}

	rec = doRequest(t, e, http.MethodGet, "/api/notifications?user_firebase_uid=alice", nil)
	var notifications []models.Notification
	decodeBody(t, rec, &notifications)
	if len(notifications) != 1 || !notifications[0].IsRead {
		t.Errorf("notification not marked read: %+v", notifications)
	}

	rec = doRequest(t, e, http.MethodPut, "/api/notifications/no-such-notification/read", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown notification: status %d, want 404", rec.Code)
	}
}
