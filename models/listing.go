package models

type Listing struct {
	ListingID          string        `json:"listing_id" bson:"listing_id"`
	PropertyID         string        `json:"property_id" bson:"property_id"`
	ListerFirebaseUID  string        `json:"lister_firebase_uid" bson:"lister_firebase_uid"`
	Status             ListingStatus `json:"status" bson:"status"`
	ViewsCount         int64         `json:"views_count" bson:"views_count"`
	VerifiedAt         *UTCTime      `json:"verified_at" bson:"verified_at"`
	VerifiedByAdminUID *string       `json:"verified_by_admin_uid" bson:"verified_by_admin_uid"`
	RejectionReason    *string       `json:"rejection_reason" bson:"rejection_reason"`
	ExpiresAt          *UTCTime      `json:"expires_at" bson:"expires_at"`
	CreatedAt          UTCTime       `json:"created_at" bson:"created_at"`
	UpdatedAt          UTCTime       `json:"updated_at" bson:"updated_at"`
}

type ListingCreate struct {
	ListingID         string   `json:"listing_id"`
	PropertyID        string   `json:"property_id"`
	ListerFirebaseUID string   `json:"lister_firebase_uid"`
	ExpiresAt         *UTCTime `json:"expires_at"`
}

type ListingUpdate struct {
	Status          *string  `json:"status"`
	RejectionReason *string  `json:"rejection_reason"`
	ExpiresAt       *UTCTime `json:"expires_at"`
}
