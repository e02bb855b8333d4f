package models

type Message struct {
	MessageID           string        `json:"message_id" bson:"message_id"`
	SenderFirebaseUID   string        `json:"sender_firebase_uid" bson:"sender_firebase_uid"`
	ReceiverFirebaseUID string        `json:"receiver_firebase_uid" bson:"receiver_firebase_uid"`
	ListingID           *string       `json:"listing_id" bson:"listing_id"`
	Subject             *string       `json:"subject" bson:"subject"`
	Content             string        `json:"content" bson:"content"`
	Status              MessageStatus `json:"status" bson:"status"`
	SentAt              UTCTime       `json:"sent_at" bson:"sent_at"`
	ReadAt              *UTCTime      `json:"read_at" bson:"read_at"`
}

type MessageCreate struct {
	MessageID           string  `json:"message_id"`
	SenderFirebaseUID   string  `json:"sender_firebase_uid"`
	ReceiverFirebaseUID string  `json:"receiver_firebase_uid"`
	ListingID           *string `json:"listing_id"`
	Subject             *string `json:"subject"`
	Content             string  `json:"content"`
}
