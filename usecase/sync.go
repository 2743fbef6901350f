package usecase

import (
	"context"
	"sync"

	"main/model"
)

// Notifier is the slice of the notification queue the session needs.
// *services.NotificationQueue satisfies it.
type Notifier interface {
	Push(message string, severity model.NotificationSeverity) *model.Notification
}

// SyncSession ties one connected client's view together: the reconciled
// in-memory collection, its filter/sort projection, and the notifications its
// mutations raise. The session's collection is mutated only through its own
// methods, but those methods run on several goroutines: the owning
// connection's read loop, its writer, and the change-feed callbacks. The
// reconciler carries its own lock; mu covers the projection.
type SyncSession struct {
	userID    string
	bookmarks *BookmarksService
	recon     *Reconciler
	notifier  Notifier

	mu         sync.Mutex
	projection Projection

	// onChange fires after any state change so the owner can re-render.
	// Set once before the session starts receiving events.
	onChange func()
}

func NewSyncSession(bookmarks *BookmarksService, notifier Notifier, userID string) *SyncSession {
	return &SyncSession{
		userID:     userID,
		bookmarks:  bookmarks,
		recon:      NewReconciler(),
		notifier:   notifier,
		projection: Projection{Sort: SortNewest},
	}
}

func (s *SyncSession) SetOnChange(fn func()) {
	s.onChange = fn
}

// Load seeds the collection from the datastore. Called once, before the
// session subscribes to the change feed.
func (s *SyncSession) Load(ctx context.Context) error {
	bookmarks, err := s.bookmarks.GetUserBookmarks(ctx, s.userID)
	if err != nil {
		return err
	}
	s.recon.Seed(bookmarks)
	return nil
}

// OnRemoteInsert handles an INSERT feed event. The row is added at the head
// of the collection unless it is already known; a fresh row raises an info
// notification since it was created elsewhere. A create from this very tab
// also lands here, because create never inserts locally.
func (s *SyncSession) OnRemoteInsert(bookmark *model.Bookmark) {
	if !s.recon.ApplyRemoteInsert(bookmark) {
		return
	}
	s.notify("New bookmark synced from another tab!", model.SeverityInfo)
	s.changed()
}

// OnRemoteDelete handles a DELETE feed event. Silent whether or not the row
// was still present; an optimistic local delete usually got there first.
func (s *SyncSession) OnRemoteDelete(bookmarkID string) {
	if !s.recon.ApplyRemoteDelete(bookmarkID) {
		return
	}
	s.changed()
}

// CreateBookmark persists a new bookmark for this session's user. The new
// row is deliberately NOT added to the local collection; it arrives through
// the feed like everyone else's copy.
func (s *SyncSession) CreateBookmark(ctx context.Context, url, title string, tags []string) (*model.Bookmark, error) {
	bookmark := &model.Bookmark{
		UserID: s.userID,
		URL:    url,
		Title:  title,
		Tags:   tags,
	}

	if err := s.bookmarks.CreateBookmark(ctx, bookmark); err != nil {
		return nil, err
	}

	s.notify("Bookmark saved!", model.SeveritySuccess)
	return bookmark, nil
}

// DeleteBookmark removes a bookmark and optimistically drops it from the
// local collection before the feed confirms. The DELETE event that follows
// is a no-op here and does the real work in every other session.
func (s *SyncSession) DeleteBookmark(ctx context.Context, bookmarkID string) error {
	if err := s.bookmarks.DeleteBookmark(ctx, bookmarkID, s.userID); err != nil {
		return err
	}

	if s.recon.RemoveLocal(bookmarkID) {
		s.changed()
	}
	s.notify("Bookmark deleted.", model.SeveritySuccess)
	return nil
}

// SetView updates the projection parameters
func (s *SyncSession) SetView(query, tag string, sort SortOrder) {
	s.mu.Lock()
	s.projection = Projection{Query: query, Tag: tag, Sort: sort}
	s.mu.Unlock()
	s.changed()
}

// View returns the projected collection: filtered, searched, sorted
func (s *SyncSession) View() []*model.Bookmark {
	s.mu.Lock()
	projection := s.projection
	s.mu.Unlock()
	return projection.Apply(s.recon.Snapshot())
}

// Total returns the unfiltered collection size
func (s *SyncSession) Total() int {
	return s.recon.Len()
}

// Tags returns the tag filter bar contents
func (s *SyncSession) Tags() []string {
	return AllTags(s.recon.Snapshot())
}

func (s *SyncSession) notify(message string, severity model.NotificationSeverity) {
	if s.notifier != nil {
		s.notifier.Push(message, severity)
	}
}

func (s *SyncSession) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}
