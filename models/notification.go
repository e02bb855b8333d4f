package models

// Notification with a nil UserFirebaseUID is a broadcast visible to all users.
type Notification struct {
	NotificationID   string  `json:"notification_id" bson:"notification_id"`
	UserFirebaseUID  *string `json:"user_firebase_uid" bson:"user_firebase_uid"`
	Title            string  `json:"title" bson:"title"`
	Message          string  `json:"message" bson:"message"`
	NotificationType string  `json:"notification_type" bson:"notification_type"`
	IsRead           bool    `json:"is_read" bson:"is_read"`
	CreatedAt        UTCTime `json:"created_at" bson:"created_at"`
}

type NotificationCreate struct {
	NotificationID   string  `json:"notification_id"`
	UserFirebaseUID  *string `json:"user_firebase_uid"`
	Title            string  `json:"title"`
	Message          string  `json:"message"`
	NotificationType string  `json:"notification_type"`
}
