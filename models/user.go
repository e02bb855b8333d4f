package models

type User struct {
	FirebaseUID        string             `json:"firebase_uid" bson:"firebase_uid"`
	Email              string             `json:"email" bson:"email"`
	Name               string             `json:"name" bson:"name"`
	Role               UserRole           `json:"role" bson:"role"`
	Phone              *string            `json:"phone" bson:"phone"`
	ProfilePicture     *string            `json:"profile_picture" bson:"profile_picture"`
	VerificationStatus VerificationStatus `json:"verification_status" bson:"verification_status"`
	TwoFactorEnabled   bool               `json:"two_factor_enabled" bson:"two_factor_enabled"`
	IsSuspended        bool               `json:"is_suspended" bson:"is_suspended"`
	IsBanned           bool               `json:"is_banned" bson:"is_banned"`
	CreatedAt          UTCTime            `json:"created_at" bson:"created_at"`
	UpdatedAt          UTCTime            `json:"updated_at" bson:"updated_at"`
}

type UserCreate struct {
	FirebaseUID    string  `json:"firebase_uid"`
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	Phone          *string `json:"phone"`
	ProfilePicture *string `json:"profile_picture"`
}

// UserUpdate fields are pointers: a nil field was not supplied and leaves the
// stored value untouched.
type UserUpdate struct {
	Name             *string `json:"name"`
	Phone            *string `json:"phone"`
	ProfilePicture   *string `json:"profile_picture"`
	TwoFactorEnabled *bool   `json:"two_factor_enabled"`
}
