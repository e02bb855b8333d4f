package handlers

import (
	"RealEstateAPI/config"
	"RealEstateAPI/models"
	"RealEstateAPI/utils"
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	propertyCachePrefix = "properties"
	propertyCacheTTL    = 60 * time.Second
)

type PropertyController struct {
	collection *mongo.Collection
}

func NewPropertyController() *PropertyController {
	collectionName := os.Getenv("MONGODB_COLLECTION_PROPERTIES")
	if collectionName == "" {
		collectionName = "properties"
	}
	return &PropertyController{
		collection: config.GetCollection(collectionName),
	}
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	var req models.PropertyCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	propertyType, err := models.ParsePropertyType(req.PropertyType)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	count, err := pc.collection.CountDocuments(context.Background(), bson.M{"property_id": req.PropertyID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to check property existence"})
	}
	if count > 0 {
		return c.JSON(http.StatusConflict, map[string]string{"error": "Property ID already exists"})
	}

	location := req.Location
	if location.Country == "" {
		location.Country = "USA"
	}

	now := models.Now()
	reason := "Initial listing"
	property := models.Property{
		PropertyID:   req.PropertyID,
		Title:        req.Title,
		Description:  req.Description,
		PropertyType: propertyType,
		CurrentPrice: req.CurrentPrice,
		PriceHistory: []models.PriceHistoryEntry{
			{Price: req.CurrentPrice, ChangedAt: now, Reason: &reason},
		},
		Location:       location,
		Bedrooms:       req.Bedrooms,
		Bathrooms:      req.Bathrooms,
		AreaSqft:       req.AreaSqft,
		YearBuilt:      req.YearBuilt,
		Amenities:      req.Amenities,
		Images:         req.Images,
		Documents:      req.Documents,
		VirtualTourURL: req.VirtualTourURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if property.Amenities == nil {
		property.Amenities = []string{}
	}
	if property.Images == nil {
		property.Images = []string{}
	}
	if property.Documents == nil {
		property.Documents = []string{}
	}

	if _, err := pc.collection.InsertOne(context.Background(), property); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "Property ID already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create property"})
	}

	utils.InvalidateCache(context.Background(), propertyCachePrefix)
	return c.JSON(http.StatusCreated, property)
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	propertyID := c.Param("property_id")
	var property models.Property
	err := pc.collection.FindOne(context.Background(), bson.M{"property_id": propertyID}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}
	return c.JSON(http.StatusOK, property)
}

func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	propertyID := c.Param("property_id")

	var property models.Property
	err := pc.collection.FindOne(context.Background(), bson.M{"property_id": propertyID}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}

	var req models.PropertyUpdate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	// A changed price appends a history entry before current_price is
	// overwritten. $push keeps the append race-free under concurrent updates.
	if req.CurrentPrice != nil && *req.CurrentPrice != property.CurrentPrice {
		reason := "Price updated"
		entry := models.PriceHistoryEntry{Price: *req.CurrentPrice, ChangedAt: models.Now(), Reason: &reason}
		_, err := pc.collection.UpdateOne(
			context.Background(),
			bson.M{"property_id": propertyID},
			bson.M{"$push": bson.M{"price_history": entry}},
		)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to record price change"})
		}
	}

	updateDoc := bson.M{"updated_at": models.Now()}
	if req.Title != nil {
		updateDoc["title"] = *req.Title
	}
	if req.Description != nil {
		updateDoc["description"] = *req.Description
	}
	if req.CurrentPrice != nil {
		updateDoc["current_price"] = *req.CurrentPrice
	}
	if req.Bedrooms != nil {
		updateDoc["bedrooms"] = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		updateDoc["bathrooms"] = *req.Bathrooms
	}
	if req.AreaSqft != nil {
		updateDoc["area_sqft"] = *req.AreaSqft
	}
	if req.Amenities != nil {
		updateDoc["amenities"] = *req.Amenities
	}
	if req.Images != nil {
		updateDoc["images"] = *req.Images
	}
	if req.Documents != nil {
		updateDoc["documents"] = *req.Documents
	}
	if req.VirtualTourURL != nil {
		updateDoc["virtual_tour_url"] = *req.VirtualTourURL
	}

	_, err = pc.collection.UpdateOne(context.Background(), bson.M{"property_id": propertyID}, bson.M{"$set": updateDoc})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update property"})
	}

	if err := pc.collection.FindOne(context.Background(), bson.M{"property_id": propertyID}).Decode(&property); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated property"})
	}

	utils.InvalidateCache(context.Background(), propertyCachePrefix)
	return c.JSON(http.StatusOK, property)
}

func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	propertyID := c.Param("property_id")
	result, err := pc.collection.DeleteOne(context.Background(), bson.M{"property_id": propertyID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete property"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}

	utils.InvalidateCache(context.Background(), propertyCachePrefix)
	return c.JSON(http.StatusOK, map[string]string{"message": "Property deleted successfully"})
}

func (pc *PropertyController) ListProperties(c echo.Context) error {
	query := bson.M{}
	cacheParams := map[string]string{}

	if propertyType := c.QueryParam("property_type"); propertyType != "" {
		parsed, err := models.ParsePropertyType(propertyType)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		query["property_type"] = parsed
		cacheParams["property_type"] = propertyType
	}
	if minPrice := c.QueryParam("min_price"); minPrice != "" {
		min, err := strconv.ParseFloat(minPrice, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "min_price must be a number"})
		}
		query["current_price"] = bson.M{"$gte": min}
		cacheParams["min_price"] = minPrice
	}
	if maxPrice := c.QueryParam("max_price"); maxPrice != "" {
		max, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "max_price must be a number"})
		}
		if existing, ok := query["current_price"].(bson.M); ok {
			existing["$lte"] = max
		} else {
			query["current_price"] = bson.M{"$lte": max}
		}
		cacheParams["max_price"] = maxPrice
	}
	if city := c.QueryParam("city"); city != "" {
		query["location.city"] = bson.M{"$regex": city, "$options": "i"}
		cacheParams["city"] = city
	}

	limit, err := parseLimit(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	cacheParams["limit"] = strconv.FormatInt(limit, 10)

	cacheKey := utils.GenerateQueryCacheKey(propertyCachePrefix, cacheParams)
	var cached []models.Property
	if hit, err := utils.GetCached(context.Background(), cacheKey, &cached); err == nil && hit {
		return c.JSON(http.StatusOK, cached)
	}

	cursor, err := pc.collection.Find(context.Background(), query, options.Find().SetLimit(limit))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}
	defer cursor.Close(context.Background())

	properties := []models.Property{}
	for cursor.Next(context.Background()) {
		var property models.Property
		if err := cursor.Decode(&property); err != nil {
			continue
		}
		properties = append(properties, property)
	}

	utils.SetCached(context.Background(), cacheKey, properties, propertyCacheTTL)
	return c.JSON(http.StatusOK, properties)
}
