package dto

import (
	"main/model"
	"time"
)

type CreateBookmarkRequest struct {
	URL   string   `json:"url" binding:"required"`
	Title string   `json:"title" binding:"required"`
	Tags  []string `json:"tags" binding:"omitempty,max=8,dive,bookmarktag"`
}

type BookmarkResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// BookmarkListResponse carries the projected view plus the counts the UI
// shows ("N of M bookmarks") and the tag filter bar contents.
type BookmarkListResponse struct {
	Bookmarks []BookmarkResponse `json:"bookmarks"`
	Total     int                `json:"total"`
	Filtered  int                `json:"filtered"`
	Tags      []string           `json:"tags,omitempty"`
}

func ToBookmarkResponse(bookmark *model.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:        bookmark.ID,
		URL:       bookmark.URL,
		Title:     bookmark.Title,
		Tags:      bookmark.Tags,
		CreatedAt: bookmark.CreatedAt,
	}
}

func ToBookmarkResponses(bookmarks []*model.Bookmark) []BookmarkResponse {
	responses := make([]BookmarkResponse, len(bookmarks))
	for i, bookmark := range bookmarks {
		responses[i] = ToBookmarkResponse(bookmark)
	}
	return responses
}
