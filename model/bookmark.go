package model

import (
	"time"
)

type Bookmark struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	URL       string    `bson:"url" json:"url" binding:"required"`
	Title     string    `bson:"title" json:"title" binding:"required"`
	Tags      []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
