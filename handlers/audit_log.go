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

type AuditLogController struct {
	collection *mongo.Collection
}

func NewAuditLogController() *AuditLogController {
	collectionName := os.Getenv("MONGODB_COLLECTION_AUDIT_LOGS")
	if collectionName == "" {
		collectionName = "audit_logs"
	}
	return &AuditLogController{
		collection: config.GetCollection(collectionName),
	}
}

func (ac *AuditLogController) CreateAuditLog(c echo.Context) error {
	var req models.AuditLogCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	entry := models.AuditLog{
		LogID:           req.LogID,
		UserFirebaseUID: req.UserFirebaseUID,
		Action:          req.Action,
		ResourceType:    req.ResourceType,
		ResourceID:      req.ResourceID,
		Metadata:        req.Metadata,
		Timestamp:       models.Now(),
	}
	if entry.Metadata == nil {
		entry.Metadata = map[string]interface{}{}
	}

	if _, err := ac.collection.InsertOne(context.Background(), entry); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "Log ID already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create audit log"})
	}
	return c.JSON(http.StatusCreated, entry)
}

func (ac *AuditLogController) ListAuditLogs(c echo.Context) error {
	query := bson.M{}
	if userUID := c.QueryParam("user_firebase_uid"); userUID != "" {
		query["user_firebase_uid"] = userUID
	}
	if action := c.QueryParam("action"); action != "" {
		query["action"] = action
	}
	if resourceType := c.QueryParam("resource_type"); resourceType != "" {
		query["resource_type"] = resourceType
	}

	limit, err := parseLimit(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit)
	cursor, err := ac.collection.Find(context.Background(), query, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch audit logs"})
	}
	defer cursor.Close(context.Background())

	logs := []models.AuditLog{}
	for cursor.Next(context.Background()) {
		var entry models.AuditLog
		if err := cursor.Decode(&entry); err != nil {
			continue
		}
		logs = append(logs, entry)
	}
	return c.JSON(http.StatusOK, logs)
}
