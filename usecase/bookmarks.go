package usecase

import (
	"context"
	"log"
	"strings"

	"main/model"
	"main/utils"
)

const MaxTagsPerBookmark = 8

// BookmarkStore is the narrow interface the service needs from the
// datastore. *repository.BookmarksRepo satisfies it; tests substitute an
// in-memory fake.
type BookmarkStore interface {
	CreateBookmark(ctx context.Context, bookmark *model.Bookmark) error
	DeleteBookmark(ctx context.Context, bookmarkID string, userID string) (bool, error)
	GetUserBookmarks(ctx context.Context, userID string) ([]*model.Bookmark, error)
	CountUserBookmarks(ctx context.Context, userID string) (int, error)
	GetUserTags(ctx context.Context, userID string) ([]string, error)
}

// FeedPublisher emits row-level change events after confirmed datastore
// writes. It stands in for the managed backend's change-data-capture stream:
// peers learn about mutations only through the feed, never directly.
type FeedPublisher interface {
	Publish(ctx context.Context, userID string, event model.ChangeEvent) error
}

type BookmarksService struct {
	BookmarksRepo BookmarkStore
	Feed          FeedPublisher
}

// validateBookmark normalizes and validates a bookmark before creation.
// Tags are lowercased, stripped of disallowed characters, and deduplicated;
// order of first occurrence is preserved.
func (svc *BookmarksService) validateBookmark(bookmark *model.Bookmark) error {
	bookmark.URL = strings.TrimSpace(bookmark.URL)
	if !utils.ValidateURL(bookmark.URL) {
		return &ValidationError{Field: "url", Reason: "please enter a valid URL including https://"}
	}

	bookmark.Title = strings.TrimSpace(bookmark.Title)
	if bookmark.Title == "" {
		return &ValidationError{Field: "title", Reason: "title cannot be empty"}
	}
	if len(bookmark.Title) > 200 {
		return &ValidationError{Field: "title", Reason: "title exceeds maximum length"}
	}

	normalized := make([]string, 0, len(bookmark.Tags))
	seen := make(map[string]bool)
	for _, tag := range bookmark.Tags {
		cleaned := normalizeTag(tag)
		if cleaned == "" || seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		normalized = append(normalized, cleaned)
	}
	bookmark.Tags = normalized

	if len(bookmark.Tags) > MaxTagsPerBookmark {
		return &ValidationError{Field: "tags", Reason: "maximum 8 tags allowed"}
	}

	return nil
}

// normalizeTag lowercases a tag and strips every character outside [a-z0-9-]
func normalizeTag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	var b strings.Builder
	for _, char := range tag {
		if (char >= 'a' && char <= 'z') || (char >= '0' && char <= '9') || char == '-' {
			b.WriteRune(char)
		}
	}
	return b.String()
}

// CreateBookmark validates and persists a new bookmark. The caller's view is
// NOT updated here: the INSERT feed event adds the row everywhere, including
// the tab that created it. That keeps duplicate-avoidance trivial at the cost
// of one feed round-trip of create latency.
func (svc *BookmarksService) CreateBookmark(ctx context.Context, bookmark *model.Bookmark) error {
	if bookmark.UserID == "" {
		return ErrNotAuthenticated
	}

	if err := svc.validateBookmark(bookmark); err != nil {
		return err
	}

	if err := svc.BookmarksRepo.CreateBookmark(ctx, bookmark); err != nil {
		return &TransportError{Op: "create bookmark", Err: err}
	}

	svc.publish(ctx, bookmark.UserID, model.ChangeEvent{
		Type:     model.ChangeEventInsert,
		Bookmark: bookmark,
	})

	return nil
}

// DeleteBookmark removes a bookmark owned by the caller. Deleting an id that
// no longer exists succeeds: the datastore reports no error on a zero-row
// delete and neither do we. A DELETE event is published only when a row was
// actually removed, so duplicate deletes from racing tabs emit one event.
func (svc *BookmarksService) DeleteBookmark(ctx context.Context, bookmarkID string, userID string) error {
	if userID == "" {
		return ErrNotAuthenticated
	}

	deleted, err := svc.BookmarksRepo.DeleteBookmark(ctx, bookmarkID, userID)
	if err != nil {
		return &TransportError{Op: "delete bookmark", Err: err}
	}

	if deleted {
		svc.publish(ctx, userID, model.ChangeEvent{
			Type:       model.ChangeEventDelete,
			BookmarkID: bookmarkID,
		})
	}

	return nil
}

// GetUserBookmarks returns all bookmarks owned by the caller, newest first.
// On datastore failure the collection comes back empty alongside the error.
func (svc *BookmarksService) GetUserBookmarks(ctx context.Context, userID string) ([]*model.Bookmark, error) {
	if userID == "" {
		return []*model.Bookmark{}, ErrNotAuthenticated
	}

	bookmarks, err := svc.BookmarksRepo.GetUserBookmarks(ctx, userID)
	if err != nil {
		return []*model.Bookmark{}, &TransportError{Op: "list bookmarks", Err: err}
	}
	if bookmarks == nil {
		bookmarks = []*model.Bookmark{}
	}
	return bookmarks, nil
}

// GetUserTags returns the distinct tags across the caller's bookmarks
func (svc *BookmarksService) GetUserTags(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	tags, err := svc.BookmarksRepo.GetUserTags(ctx, userID)
	if err != nil {
		return nil, &TransportError{Op: "list tags", Err: err}
	}
	return tags, nil
}

func (svc *BookmarksService) publish(ctx context.Context, userID string, event model.ChangeEvent) {
	if svc.Feed == nil {
		return
	}
	// Feed publication is best-effort: a dropped event means a stale tab
	// until its next full load, not a failed mutation.
	if err := svc.Feed.Publish(ctx, userID, event); err != nil {
		log.Printf("Failed to publish %s event for user %s: %v", event.Type, userID, err)
	}
}
