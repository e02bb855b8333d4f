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

type SavedListingController struct {
	collection *mongo.Collection
}

func NewSavedListingController() *SavedListingController {
	collectionName := os.Getenv("MONGODB_COLLECTION_SAVED_LISTINGS")
	if collectionName == "" {
		collectionName = "saved_listings"
	}
	return &SavedListingController{
		collection: config.GetCollection(collectionName),
	}
}

func (sc *SavedListingController) CreateSavedListing(c echo.Context) error {
	var req models.SavedListingCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	count, err := sc.collection.CountDocuments(context.Background(), bson.M{
		"user_firebase_uid": req.UserFirebaseUID,
		"listing_id":        req.ListingID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to check saved listing"})
	}
	if count > 0 {
		return c.JSON(http.StatusConflict, map[string]string{"error": "Listing already saved"})
	}

	saved := models.SavedListing{
		SavedID:         req.SavedID,
		UserFirebaseUID: req.UserFirebaseUID,
		ListingID:       req.ListingID,
		Notes:           req.Notes,
		SavedAt:         models.Now(),
	}

	// The compound unique index backs the pre-check under concurrent saves.
	if _, err := sc.collection.InsertOne(context.Background(), saved); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "Listing already saved"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save listing"})
	}
	return c.JSON(http.StatusCreated, saved)
}

func (sc *SavedListingController) ListSavedListings(c echo.Context) error {
	userUID := c.QueryParam("user_firebase_uid")
	if userUID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_firebase_uid is required"})
	}

	limit, err := parseLimit(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	cursor, err := sc.collection.Find(context.Background(), bson.M{"user_firebase_uid": userUID}, options.Find().SetLimit(limit))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch saved listings"})
	}
	defer cursor.Close(context.Background())

	saved := []models.SavedListing{}
	for cursor.Next(context.Background()) {
		var item models.SavedListing
		if err := cursor.Decode(&item); err != nil {
			continue
		}
		saved = append(saved, item)
	}
	return c.JSON(http.StatusOK, saved)
}

func (sc *SavedListingController) DeleteSavedListing(c echo.Context) error {
	savedID := c.Param("saved_id")
	result, err := sc.collection.DeleteOne(context.Background(), bson.M{"saved_id": savedID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to remove saved listing"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Saved listing not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Saved listing removed"})
}
