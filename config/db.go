package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

func ConnectDB() {
	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		mongoURL = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "real_estate"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	Client = client
	DB = client.Database(dbName)
	log.Printf("Connected to MongoDB database %s", dbName)
}

func GetCollection(name string) *mongo.Collection {
	return DB.Collection(name)
}

func collName(envKey, fallback string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return fallback
}

func Disconnect(ctx context.Context) error {
	return Client.Disconnect(ctx)
}

// EnsureIndexes creates every index the API relies on. Unique indexes back
// the create-time duplicate checks; the compound (user_firebase_uid,
// listing_id) index enforces the one-save-per-listing rule at the store.
func EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		collName("MONGODB_COLLECTION_USERS", "users"): {
			{Keys: bson.D{{Key: "firebase_uid", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}},
			{Keys: bson.D{{Key: "role", Value: 1}}},
		},
		collName("MONGODB_COLLECTION_PROPERTIES", "properties"): {
			{Keys: bson.D{{Key: "property_id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "property_type", Value: 1}}},
			{Keys: bson.D{{Key: "current_price", Value: 1}}},
			{Keys: bson.D{{Key: "location.city", Value: 1}, {Key: "location.state", Value: 1}}},
		},
		collName("MONGODB_COLLECTION_LISTINGS", "listings"): {
			{Keys: bson.D{{Key: "listing_id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "property_id", Value: 1}}},
			{Keys: bson.D{{Key: "lister_firebase_uid", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		collName("MONGODB_COLLECTION_VERIFICATION_DOCUMENTS", "verification_documents"): {
			{Keys: bson.D{{Key: "document_id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "user_firebase_uid", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		collName("MONGODB_COLLECTION_SAVED_LISTINGS", "saved_listings"): {
			{Keys: bson.D{{Key: "saved_id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "user_firebase_uid", Value: 1}}},
			{Keys: bson.D{{Key: "user_firebase_uid", Value: 1}, {Key: "listing_id", Value: 1}}, Options: unique},
		},
		collName("MONGODB_COLLECTION_COMPARISONS", "property_comparisons"): {
			{Keys: bson.D{{Key: "comparison_id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "user_firebase_uid", Value: 1}}},
		},
		collName("MONGODB_COLLECTION_REVIEWS", "reviews"): {
			{Keys: bson.D{{Key: "review_id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "target_id", Value: 1}}},
			{Keys: bson.D{{Key: "target_type", Value: 1}, {Key: "target_id", Value: 1}}},
		},
		collName("MONGODB_COLLECTION_MESSAGES", "messages"): {
			{Keys: bson.D{{Key: "message_id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "sender_firebase_uid", Value: 1}}},
			{Keys: bson.D{{Key: "receiver_firebase_uid", Value: 1}}},
			{Keys: bson.D{{Key: "sent_at", Value: 1}}},
		},
		collName("MONGODB_COLLECTION_NOTIFICATIONS", "notifications"): {
			{Keys: bson.D{{Key: "notification_id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "user_firebase_uid", Value: 1}}},
		},
		collName("MONGODB_COLLECTION_AUDIT_LOGS", "audit_logs"): {
			{Keys: bson.D{{Key: "log_id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "user_firebase_uid", Value: 1}}},
			{Keys: bson.D{{Key: "timestamp", Value: 1}}},
			{Keys: bson.D{{Key: "action", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := GetCollection(name).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}

	log.Println("Database indexes created successfully")
	return nil
}
