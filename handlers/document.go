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

type DocumentController struct {
	collection     *mongo.Collection
	userCollection *mongo.Collection
}

func NewDocumentController() *DocumentController {
	collectionName := os.Getenv("MONGODB_COLLECTION_VERIFICATION_DOCUMENTS")
	if collectionName == "" {
		collectionName = "verification_documents"
	}
	userCollectionName := os.Getenv("MONGODB_COLLECTION_USERS")
	if userCollectionName == "" {
		userCollectionName = "users"
	}
	return &DocumentController{
		collection:     config.GetCollection(collectionName),
		userCollection: config.GetCollection(userCollectionName),
	}
}

func (dc *DocumentController) CreateDocument(c echo.Context) error {
	var req models.VerificationDocumentCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	doc := models.VerificationDocument{
		DocumentID:      req.DocumentID,
		UserFirebaseUID: req.UserFirebaseUID,
		DocumentType:    req.DocumentType,
		DocumentURL:     req.DocumentURL,
		Status:          models.VerificationPending,
		CreatedAt:       models.Now(),
	}

	if _, err := dc.collection.InsertOne(context.Background(), doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "Document ID already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create document"})
	}
	return c.JSON(http.StatusCreated, doc)
}

func (dc *DocumentController) GetDocument(c echo.Context) error {
	documentID := c.Param("document_id")
	var doc models.VerificationDocument
	err := dc.collection.FindOne(context.Background(), bson.M{"document_id": documentID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Document not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch document"})
	}
	return c.JSON(http.StatusOK, doc)
}

func (dc *DocumentController) ListDocuments(c echo.Context) error {
	query := bson.M{}
	if userUID := c.QueryParam("user_firebase_uid"); userUID != "" {
		query["user_firebase_uid"] = userUID
	}
	if status := c.QueryParam("status"); status != "" {
		parsed, err := models.ParseVerificationStatus(status)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		query["status"] = parsed
	}

	limit, err := parseLimit(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	cursor, err := dc.collection.Find(context.Background(), query, options.Find().SetLimit(limit))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch documents"})
	}
	defer cursor.Close(context.Background())

	docs := []models.VerificationDocument{}
	for cursor.Next(context.Background()) {
		var doc models.VerificationDocument
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		docs = append(docs, doc)
	}
	return c.JSON(http.StatusOK, docs)
}

// VerifyDocument sets the document's verification outcome. A verified
// identity proof also flips the owning user's verification_status; the two
// writes are separate store operations, not a transaction.
func (dc *DocumentController) VerifyDocument(c echo.Context) error {
	documentID := c.Param("document_id")

	adminUID := c.QueryParam("admin_uid")
	if adminUID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "admin_uid is required"})
	}
	status, err := models.ParseVerificationStatus(c.QueryParam("status"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	var doc models.VerificationDocument
	err = dc.collection.FindOne(context.Background(), bson.M{"document_id": documentID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Document not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch document"})
	}

	updateDoc := bson.M{
		"status":                status,
		"verified_by_admin_uid": adminUID,
		"verified_at":           models.Now(),
	}
	if reason := c.QueryParam("rejection_reason"); reason != "" {
		updateDoc["rejection_reason"] = reason
	}

	_, err = dc.collection.UpdateOne(context.Background(), bson.M{"document_id": documentID}, bson.M{"$set": updateDoc})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update document"})
	}

	if status == models.VerificationVerified && doc.DocumentType == models.DocumentTypeIdentityProof {
		_, err = dc.userCollection.UpdateOne(
			context.Background(),
			bson.M{"firebase_uid": doc.UserFirebaseUID},
			bson.M{"$set": bson.M{"verification_status": models.VerificationVerified}},
		)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update user verification status"})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Document verification updated"})
}
