package models

type SavedListing struct {
	SavedID         string  `json:"saved_id" bson:"saved_id"`
	UserFirebaseUID string  `json:"user_firebase_uid" bson:"user_firebase_uid"`
	ListingID       string  `json:"listing_id" bson:"listing_id"`
	Notes           *string `json:"notes" bson:"notes"`
	SavedAt         UTCTime `json:"saved_at" bson:"saved_at"`
}

type SavedListingCreate struct {
	SavedID         string  `json:"saved_id"`
	UserFirebaseUID string  `json:"user_firebase_uid"`
	ListingID       string  `json:"listing_id"`
	Notes           *string `json:"notes"`
}
