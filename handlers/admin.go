package handlers

import (
	"RealEstateAPI/config"
	"RealEstateAPI/models"
	"context"
	"net/http"
	"os"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminController struct {
	userCollection     *mongo.Collection
	propertyCollection *mongo.Collection
	listingCollection  *mongo.Collection
	documentCollection *mongo.Collection
}

func NewAdminController() *AdminController {
	userCollectionName := os.Getenv("MONGODB_COLLECTION_USERS")
	if userCollectionName == "" {
		userCollectionName = "users"
	}
	propertyCollectionName := os.Getenv("MONGODB_COLLECTION_PROPERTIES")
	if propertyCollectionName == "" {
		propertyCollectionName = "properties"
	}
	listingCollectionName := os.Getenv("MONGODB_COLLECTION_LISTINGS")
	if listingCollectionName == "" {
		listingCollectionName = "listings"
	}
	documentCollectionName := os.Getenv("MONGODB_COLLECTION_VERIFICATION_DOCUMENTS")
	if documentCollectionName == "" {
		documentCollectionName = "verification_documents"
	}
	return &AdminController{
		userCollection:     config.GetCollection(userCollectionName),
		propertyCollection: config.GetCollection(propertyCollectionName),
		listingCollection:  config.GetCollection(listingCollectionName),
		documentCollection: config.GetCollection(documentCollectionName),
	}
}

func (ac *AdminController) SuspendUser(c echo.Context) error {
	userRole := c.Get("user_role").(string)
	if userRole != string(models.RoleAdmin) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Access denied"})
	}

	isSuspended, err := strconv.ParseBool(c.QueryParam("is_suspended"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "is_suspended must be a boolean"})
	}

	firebaseUID := c.Param("firebase_uid")
	result, err := ac.userCollection.UpdateOne(
		context.Background(),
		bson.M{"firebase_uid": firebaseUID},
		bson.M{"$set": bson.M{"is_suspended": isSuspended}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update user"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
	}

	if isSuspended {
		return c.JSON(http.StatusOK, map[string]string{"message": "User suspended"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User unsuspended"})
}

func (ac *AdminController) BanUser(c echo.Context) error {
	userRole := c.Get("user_role").(string)
	if userRole != string(models.RoleAdmin) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Access denied"})
	}

	isBanned, err := strconv.ParseBool(c.QueryParam("is_banned"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "is_banned must be a boolean"})
	}

	firebaseUID := c.Param("firebase_uid")
	result, err := ac.userCollection.UpdateOne(
		context.Background(),
		bson.M{"firebase_uid": firebaseUID},
		bson.M{"$set": bson.M{"is_banned": isBanned}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update user"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
	}

	if isBanned {
		return c.JSON(http.StatusOK, map[string]string{"message": "User banned"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User unbanned"})
}

// GetAnalytics recomputes live counts on every call; nothing here is cached.
func (ac *AdminController) GetAnalytics(c echo.Context) error {
	userRole := c.Get("user_role").(string)
	if userRole != string(models.RoleAdmin) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Access denied"})
	}

	ctx := context.Background()

	totalUsers, err := ac.userCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count users"})
	}
	totalProperties, err := ac.propertyCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count properties"})
	}
	totalListings, err := ac.listingCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count listings"})
	}
	activeListings, err := ac.listingCollection.CountDocuments(ctx, bson.M{"status": models.ListingActive})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count active listings"})
	}
	pendingVerifications, err := ac.documentCollection.CountDocuments(ctx, bson.M{"status": models.VerificationPending})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count pending verifications"})
	}

	return c.JSON(http.StatusOK, map[string]int64{
		"total_users":           totalUsers,
		"total_properties":      totalProperties,
		"total_listings":        totalListings,
		"active_listings":       activeListings,
		"pending_verifications": pendingVerifications,
	})
}
