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

type NotificationController struct {
	collection *mongo.Collection
}

func NewNotificationController() *NotificationController {
	collectionName := os.Getenv("MONGODB_COLLECTION_NOTIFICATIONS")
	if collectionName == "" {
		collectionName = "notifications"
	}
	return &NotificationController{
		collection: config.GetCollection(collectionName),
	}
}

func (nc *NotificationController) CreateNotification(c echo.Context) error {
	var req models.NotificationCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	notification := models.Notification{
		NotificationID:   req.NotificationID,
		UserFirebaseUID:  req.UserFirebaseUID,
		Title:            req.Title,
		Message:          req.Message,
		NotificationType: req.NotificationType,
		CreatedAt:        models.Now(),
	}

	if _, err := nc.collection.InsertOne(context.Background(), notification); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "Notification ID already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create notification"})
	}
	return c.JSON(http.StatusCreated, notification)
}

// ListNotifications returns the user's own notifications plus broadcasts
// (stored with a null user_firebase_uid), newest first.
func (nc *NotificationController) ListNotifications(c echo.Context) error {
	userUID := c.QueryParam("user_firebase_uid")
	if userUID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_firebase_uid is required"})
	}

	limit, err := parseLimit(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	query := bson.M{
		"$or": bson.A{
			bson.M{"user_firebase_uid": userUID},
			bson.M{"user_firebase_uid": nil},
		},
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cursor, err := nc.collection.Find(context.Background(), query, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch notifications"})
	}
	defer cursor.Close(context.Background())

	notifications := []models.Notification{}
	for cursor.Next(context.Background()) {
		var notification models.Notification
		if err := cursor.Decode(&notification); err != nil {
			continue
		}
		notifications = append(notifications, notification)
	}
	return c.JSON(http.StatusOK, notifications)
}

func (nc *NotificationController) MarkNotificationRead(c echo.Context) error {
	notificationID := c.Param("notification_id")

	result, err := nc.collection.UpdateOne(
		context.Background(),
		bson.M{"notification_id": notificationID},
		bson.M{"$set": bson.M{"is_read": true}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to mark notification read"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Notification not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Notification marked as read"})
}
