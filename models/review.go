package models

type Review struct {
	ReviewID            string           `json:"review_id" bson:"review_id"`
	ReviewerFirebaseUID string           `json:"reviewer_firebase_uid" bson:"reviewer_firebase_uid"`
	TargetType          ReviewTargetType `json:"target_type" bson:"target_type"`
	TargetID            string           `json:"target_id" bson:"target_id"`
	Rating              float64          `json:"rating" bson:"rating"`
	Comment             string           `json:"comment" bson:"comment"`
	CreatedAt           UTCTime          `json:"created_at" bson:"created_at"`
	UpdatedAt           UTCTime          `json:"updated_at" bson:"updated_at"`
}

type ReviewCreate struct {
	ReviewID            string  `json:"review_id"`
	ReviewerFirebaseUID string  `json:"reviewer_firebase_uid"`
	TargetType          string  `json:"target_type"`
	TargetID            string  `json:"target_id"`
	Rating              float64 `json:"rating"`
	Comment             string  `json:"comment"`
}
