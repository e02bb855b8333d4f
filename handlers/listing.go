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

type ListingController struct {
	collection         *mongo.Collection
	propertyCollection *mongo.Collection
	userCollection     *mongo.Collection
}

func NewListingController() *ListingController {
	collectionName := os.Getenv("MONGODB_COLLECTION_LISTINGS")
	if collectionName == "" {
		collectionName = "listings"
	}
	propertyCollectionName := os.Getenv("MONGODB_COLLECTION_PROPERTIES")
	if propertyCollectionName == "" {
		propertyCollectionName = "properties"
	}
	userCollectionName := os.Getenv("MONGODB_COLLECTION_USERS")
	if userCollectionName == "" {
		userCollectionName = "users"
	}
	return &ListingController{
		collection:         config.GetCollection(collectionName),
		propertyCollection: config.GetCollection(propertyCollectionName),
		userCollection:     config.GetCollection(userCollectionName),
	}
}

func (lc *ListingController) CreateListing(c echo.Context) error {
	var req models.ListingCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	count, err := lc.propertyCollection.CountDocuments(context.Background(), bson.M{"property_id": req.PropertyID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to check property existence"})
	}
	if count == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}

	count, err = lc.userCollection.CountDocuments(context.Background(), bson.M{"firebase_uid": req.ListerFirebaseUID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to check lister existence"})
	}
	if count == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Lister not found"})
	}

	now := models.Now()
	listing := models.Listing{
		ListingID:         req.ListingID,
		PropertyID:        req.PropertyID,
		ListerFirebaseUID: req.ListerFirebaseUID,
		Status:            models.ListingPending,
		ViewsCount:        0,
		ExpiresAt:         req.ExpiresAt,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if _, err := lc.collection.InsertOne(context.Background(), listing); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "Listing ID already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create listing"})
	}
	return c.JSON(http.StatusCreated, listing)
}

func (lc *ListingController) GetListing(c echo.Context) error {
	listingID := c.Param("listing_id")
	var listing models.Listing
	err := lc.collection.FindOne(context.Background(), bson.M{"listing_id": listingID}).Decode(&listing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Listing not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch listing"})
	}

	// Atomic counter bump, issued separately from the read; the returned
	// body may trail the stored count.
	_, err = lc.collection.UpdateOne(
		context.Background(),
		bson.M{"listing_id": listingID},
		bson.M{"$inc": bson.M{"views_count": 1}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update view count"})
	}

	return c.JSON(http.StatusOK, listing)
}

func (lc *ListingController) UpdateListing(c echo.Context) error {
	listingID := c.Param("listing_id")

	count, err := lc.collection.CountDocuments(context.Background(), bson.M{"listing_id": listingID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch listing"})
	}
	if count == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Listing not found"})
	}

	var req models.ListingUpdate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updateDoc := bson.M{"updated_at": models.Now()}
	if req.Status != nil {
		status, err := models.ParseListingStatus(*req.Status)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		updateDoc["status"] = status
		if status == models.ListingVerified {
			updateDoc["verified_at"] = models.Now()
		}
	}
	if req.RejectionReason != nil {
		updateDoc["rejection_reason"] = *req.RejectionReason
	}
	if req.ExpiresAt != nil {
		updateDoc["expires_at"] = *req.ExpiresAt
	}

	_, err = lc.collection.UpdateOne(context.Background(), bson.M{"listing_id": listingID}, bson.M{"$set": updateDoc})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update listing"})
	}

	var listing models.Listing
	if err := lc.collection.FindOne(context.Background(), bson.M{"listing_id": listingID}).Decode(&listing); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated listing"})
	}
	return c.JSON(http.StatusOK, listing)
}

func (lc *ListingController) ListListings(c echo.Context) error {
	query := bson.M{}
	if status := c.QueryParam("status"); status != "" {
		parsed, err := models.ParseListingStatus(status)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		query["status"] = parsed
	}
	if listerUID := c.QueryParam("lister_firebase_uid"); listerUID != "" {
		query["lister_firebase_uid"] = listerUID
	}

	limit, err := parseLimit(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	cursor, err := lc.collection.Find(context.Background(), query, options.Find().SetLimit(limit))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch listings"})
	}
	defer cursor.Close(context.Background())

	listings := []models.Listing{}
	for cursor.Next(context.Background()) {
		var listing models.Listing
		if err := cursor.Decode(&listing); err != nil {
			continue
		}
		listings = append(listings, listing)
	}
	return c.JSON(http.StatusOK, listings)
}
