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

type ReviewController struct {
	collection *mongo.Collection
}

func NewReviewController() *ReviewController {
	collectionName := os.Getenv("MONGODB_COLLECTION_REVIEWS")
	if collectionName == "" {
		collectionName = "reviews"
	}
	return &ReviewController{
		collection: config.GetCollection(collectionName),
	}
}

func (rc *ReviewController) CreateReview(c echo.Context) error {
	var req models.ReviewCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	targetType, err := models.ParseReviewTargetType(req.TargetType)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Rating must be between 1 and 5"})
	}

	now := models.Now()
	review := models.Review{
		ReviewID:            req.ReviewID,
		ReviewerFirebaseUID: req.ReviewerFirebaseUID,
		TargetType:          targetType,
		TargetID:            req.TargetID,
		Rating:              req.Rating,
		Comment:             req.Comment,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if _, err := rc.collection.InsertOne(context.Background(), review); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "Review ID already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create review"})
	}
	return c.JSON(http.StatusCreated, review)
}

func (rc *ReviewController) ListReviews(c echo.Context) error {
	query := bson.M{}
	if targetType := c.QueryParam("target_type"); targetType != "" {
		parsed, err := models.ParseReviewTargetType(targetType)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		query["target_type"] = parsed
	}
	if targetID := c.QueryParam("target_id"); targetID != "" {
		query["target_id"] = targetID
	}

	limit, err := parseLimit(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	cursor, err := rc.collection.Find(context.Background(), query, options.Find().SetLimit(limit))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch reviews"})
	}
	defer cursor.Close(context.Background())

	reviews := []models.Review{}
	for cursor.Next(context.Background()) {
		var review models.Review
		if err := cursor.Decode(&review); err != nil {
			continue
		}
		reviews = append(reviews, review)
	}
	return c.JSON(http.StatusOK, reviews)
}

func (rc *ReviewController) DeleteReview(c echo.Context) error {
	reviewID := c.Param("review_id")
	result, err := rc.collection.DeleteOne(context.Background(), bson.M{"review_id": reviewID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete review"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Review not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Review deleted"})
}
