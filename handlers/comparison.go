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

type ComparisonController struct {
	collection *mongo.Collection
}

func NewComparisonController() *ComparisonController {
	collectionName := os.Getenv("MONGODB_COLLECTION_COMPARISONS")
	if collectionName == "" {
		collectionName = "property_comparisons"
	}
	return &ComparisonController{
		collection: config.GetCollection(collectionName),
	}
}

func (cc *ComparisonController) CreateComparison(c echo.Context) error {
	var req models.PropertyComparisonCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	comparison := models.PropertyComparison{
		ComparisonID:    req.ComparisonID,
		UserFirebaseUID: req.UserFirebaseUID,
		PropertyIDs:     req.PropertyIDs,
		CreatedAt:       models.Now(),
	}
	if comparison.PropertyIDs == nil {
		comparison.PropertyIDs = []string{}
	}

	if _, err := cc.collection.InsertOne(context.Background(), comparison); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "Comparison ID already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create comparison"})
	}
	return c.JSON(http.StatusCreated, comparison)
}

func (cc *ComparisonController) ListComparisons(c echo.Context) error {
	userUID := c.QueryParam("user_firebase_uid")
	if userUID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_firebase_uid is required"})
	}

	limit, err := parseLimit(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	cursor, err := cc.collection.Find(context.Background(), bson.M{"user_firebase_uid": userUID}, options.Find().SetLimit(limit))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch comparisons"})
	}
	defer cursor.Close(context.Background())

	comparisons := []models.PropertyComparison{}
	for cursor.Next(context.Background()) {
		var comparison models.PropertyComparison
		if err := cursor.Decode(&comparison); err != nil {
			continue
		}
		comparisons = append(comparisons, comparison)
	}
	return c.JSON(http.StatusOK, comparisons)
}

func (cc *ComparisonController) DeleteComparison(c echo.Context) error {
	comparisonID := c.Param("comparison_id")
	result, err := cc.collection.DeleteOne(context.Background(), bson.M{"comparison_id": comparisonID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete comparison"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Comparison not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Comparison deleted"})
}
