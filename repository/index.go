package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bookmarksCollection := db.Collection("bookmarks")

	bookmarkIndexes := []mongo.IndexModel{
		// Basic user-date index, backs the default newest-first listing
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().
				SetName("user_bookmarks_date").
				SetUnique(false),
		},
		// User ID index
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("user_id_index"),
		},
		// Tags index
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "tags", Value: 1},
			},
			Options: options.Index().
				SetName("user_tags"),
		},
	}

	_, err := bookmarksCollection.Indexes().CreateMany(ctx, bookmarkIndexes)
	if err != nil {
		return fmt.Errorf("failed to create bookmarks indexes: %w", err)
	}

	log.Println("Successfully created all indexes")
	return nil
}
