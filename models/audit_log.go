package models

// AuditLog records are append-only; there is no update or delete path.
type AuditLog struct {
	LogID           string                 `json:"log_id" bson:"log_id"`
	UserFirebaseUID *string                `json:"user_firebase_uid" bson:"user_firebase_uid"`
	Action          string                 `json:"action" bson:"action"`
	ResourceType    *string                `json:"resource_type" bson:"resource_type"`
	ResourceID      *string                `json:"resource_id" bson:"resource_id"`
	Metadata        map[string]interface{} `json:"metadata" bson:"metadata"`
	Timestamp       UTCTime                `json:"timestamp" bson:"timestamp"`
}

type AuditLogCreate struct {
	LogID           string                 `json:"log_id"`
	UserFirebaseUID *string                `json:"user_firebase_uid"`
	Action          string                 `json:"action"`
	ResourceType    *string                `json:"resource_type"`
	ResourceID      *string                `json:"resource_id"`
	Metadata        map[string]interface{} `json:"metadata"`
}
