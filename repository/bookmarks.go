package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookmarksRepo struct {
	MongoCollection *mongo.Collection
}

func GetBookmarksRepo(client *mongo.Client) *BookmarksRepo {
	return &BookmarksRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("bookmarks"),
	}
}

// CreateBookmark persists a new bookmark. The id and created_at fields are
// assigned here, never by the caller.
func (r *BookmarksRepo) CreateBookmark(ctx context.Context, bookmark *model.Bookmark) error {
	if bookmark.UserID == "" {
		return errors.New("user ID is required")
	}

	bookmark.ID = utils.GenerateID()
	bookmark.CreatedAt = time.Now()

	_, err := r.MongoCollection.InsertOne(ctx, bookmark)
	return err
}

// DeleteBookmark removes the bookmark matching id AND owner. Delete is
// idempotent: a zero-row delete is not an error, the boolean just reports
// whether a row was actually removed. Callers must not treat a missing row
// as a failure.
func (r *BookmarksRepo) DeleteBookmark(ctx context.Context, bookmarkID string, userID string) (bool, error) {
	filter := bson.M{
		"_id":     bookmarkID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		return false, err
	}

	return result.DeletedCount > 0, nil
}

// GetUserBookmarks retrieves all bookmarks for a user, newest first
func (r *BookmarksRepo) GetUserBookmarks(ctx context.Context, userID string) ([]*model.Bookmark, error) {
	var bookmarks []*model.Bookmark
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &bookmarks); err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// CountUserBookmarks counts the number of bookmarks for a user
func (r *BookmarksRepo) CountUserBookmarks(ctx context.Context, userID string) (int, error) {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// GetUserTags returns the distinct tags across a user's bookmarks
func (r *BookmarksRepo) GetUserTags(ctx context.Context, userID string) ([]string, error) {
	values, err := r.MongoCollection.Distinct(ctx, "tags", bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}

	tags := make([]string, 0, len(values))
	for _, v := range values {
		if tag, ok := v.(string); ok {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}
