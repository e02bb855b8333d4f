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

type UserController struct {
	collection *mongo.Collection
}

func NewUserController() *UserController {
	collectionName := os.Getenv("MONGODB_COLLECTION_USERS")
	if collectionName == "" {
		collectionName = "users"
	}
	return &UserController{
		collection: config.GetCollection(collectionName),
	}
}

func (uc *UserController) CreateUser(c echo.Context) error {
	var req models.UserCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	role, err := models.ParseUserRole(req.Role)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	count, err := uc.collection.CountDocuments(context.Background(), bson.M{"firebase_uid": req.FirebaseUID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to check user existence"})
	}
	if count > 0 {
		return c.JSON(http.StatusConflict, map[string]string{"error": "User already exists"})
	}

	now := models.Now()
	user := models.User{
		FirebaseUID:        req.FirebaseUID,
		Email:              req.Email,
		Name:               req.Name,
		Role:               role,
		Phone:              req.Phone,
		ProfilePicture:     req.ProfilePicture,
		VerificationStatus: models.VerificationNotSubmitted,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if _, err := uc.collection.InsertOne(context.Background(), user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "User already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create user"})
	}
	return c.JSON(http.StatusCreated, user)
}

func (uc *UserController) GetUser(c echo.Context) error {
	firebaseUID := c.Param("firebase_uid")
	var user models.User
	err := uc.collection.FindOne(context.Background(), bson.M{"firebase_uid": firebaseUID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch user"})
	}
	return c.JSON(http.StatusOK, user)
}

func (uc *UserController) UpdateUser(c echo.Context) error {
	firebaseUID := c.Param("firebase_uid")

	count, err := uc.collection.CountDocuments(context.Background(), bson.M{"firebase_uid": firebaseUID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch user"})
	}
	if count == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
	}

	var req models.UserUpdate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updateDoc := bson.M{"updated_at": models.Now()}
	if req.Name != nil {
		updateDoc["name"] = *req.Name
	}
	if req.Phone != nil {
		updateDoc["phone"] = *req.Phone
	}
	if req.ProfilePicture != nil {
		updateDoc["profile_picture"] = *req.ProfilePicture
	}
	if req.TwoFactorEnabled != nil {
		updateDoc["two_factor_enabled"] = *req.TwoFactorEnabled
	}

	_, err = uc.collection.UpdateOne(context.Background(), bson.M{"firebase_uid": firebaseUID}, bson.M{"$set": updateDoc})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update user"})
	}

	var user models.User
	if err := uc.collection.FindOne(context.Background(), bson.M{"firebase_uid": firebaseUID}).Decode(&user); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated user"})
	}
	return c.JSON(http.StatusOK, user)
}

func (uc *UserController) ListUsers(c echo.Context) error {
	query := bson.M{}
	if role := c.QueryParam("role"); role != "" {
		parsed, err := models.ParseUserRole(role)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		query["role"] = parsed
	}

	limit, err := parseLimit(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	cursor, err := uc.collection.Find(context.Background(), query, options.Find().SetLimit(limit))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch users"})
	}
	defer cursor.Close(context.Background())

	users := []models.User{}
	for cursor.Next(context.Background()) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			continue
		}
		users = append(users, user)
	}
	return c.JSON(http.StatusOK, users)
}
