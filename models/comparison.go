package models

type PropertyComparison struct {
	ComparisonID    string   `json:"comparison_id" bson:"comparison_id"`
	UserFirebaseUID string   `json:"user_firebase_uid" bson:"user_firebase_uid"`
	PropertyIDs     []string `json:"property_ids" bson:"property_ids"`
	CreatedAt       UTCTime  `json:"created_at" bson:"created_at"`
}

type PropertyComparisonCreate struct {
	ComparisonID    string   `json:"comparison_id"`
	UserFirebaseUID string   `json:"user_firebase_uid"`
	PropertyIDs     []string `json:"property_ids"`
}
