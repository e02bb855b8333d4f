package handlers

import (
	"RealEstateAPI/config"
	"RealEstateAPI/models"
	"context"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageController struct {
	collection *mongo.Collection
}

func NewMessageController() *MessageController {
	collectionName := os.Getenv("MONGODB_COLLECTION_MESSAGES")
	if collectionName == "" {
		collectionName = "messages"
	}
	return &MessageController{
		collection: config.GetCollection(collectionName),
	}
}

func (mc *MessageController) CreateMessage(c echo.Context) error {
	var req models.MessageCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	message := models.Message{
		MessageID:           req.MessageID,
		SenderFirebaseUID:   req.SenderFirebaseUID,
		ReceiverFirebaseUID: req.ReceiverFirebaseUID,
		ListingID:           req.ListingID,
		Subject:             req.Subject,
		Content:             req.Content,
		Status:              models.MessageUnread,
		SentAt:              models.Now(),
	}

	if _, err := mc.collection.InsertOne(context.Background(), message); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "Message ID already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to send message"})
	}
	return c.JSON(http.StatusCreated, message)
}

func (mc *MessageController) ListMessages(c echo.Context) error {
	userUID := c.QueryParam("user_firebase_uid")
	if userUID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_firebase_uid is required"})
	}

	var query bson.M
	if conversationWith := c.QueryParam("conversation_with"); conversationWith != "" {
		query = bson.M{
			"$or": bson.A{
				bson.M{"sender_firebase_uid": userUID, "receiver_firebase_uid": conversationWith},
				bson.M{"sender_firebase_uid": conversationWith, "receiver_firebase_uid": userUID},
			},
		}
	} else {
		query = bson.M{
			"$or": bson.A{
				bson.M{"sender_firebase_uid": userUID},
				bson.M{"receiver_firebase_uid": userUID},
			},
		}
	}

	limit, err := parseLimit(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	opts := options.Find().SetSort(bson.D{{Key: "sent_at", Value: -1}}).SetLimit(limit)
	cursor, err := mc.collection.Find(context.Background(), query, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch messages"})
	}
	defer cursor.Close(context.Background())

	messages := []models.Message{}
	for cursor.Next(context.Background()) {
		var message models.Message
		if err := cursor.Decode(&message); err != nil {
			continue
		}
		messages = append(messages, message)
	}
	return c.JSON(http.StatusOK, messages)
}

// MarkMessageRead filters on unread status so read_at is written at most once.
func (mc *MessageController) MarkMessageRead(c echo.Context) error {
	messageID := c.Param("message_id")

	result, err := mc.collection.UpdateOne(
		context.Background(),
		bson.M{"message_id": messageID, "status": models.MessageUnread},
		bson.M{"$set": bson.M{"status": models.MessageRead, "read_at": models.Now()}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to mark message read"})
	}
	if result.ModifiedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Message not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Message marked as read"})
}
