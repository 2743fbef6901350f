package usecase

import (
	"sync"

	"main/model"
)

// Reconciler maintains one session's in-memory bookmark collection, merging
// locally-initiated optimistic mutations with change-feed events into a
// single consistent list. The collection never holds two entries with the
// same id, and applying any feed event twice leaves the same state as
// applying it once.
//
// Deletes are optimistic (removed locally before the feed confirms), inserts
// are not: a freshly created bookmark only appears once its INSERT event
// arrives. Keep that asymmetry: making insert optimistic as well would
// reintroduce the duplicate-on-echo race the feed-driven path avoids.
type Reconciler struct {
	mu        sync.Mutex
	bookmarks []*model.Bookmark
}

func NewReconciler() *Reconciler {
	return &Reconciler{
		bookmarks: []*model.Bookmark{},
	}
}

// Seed replaces the collection with the initial load from the datastore
func (r *Reconciler) Seed(bookmarks []*model.Bookmark) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookmarks = make([]*model.Bookmark, 0, len(bookmarks))
	seen := make(map[string]bool, len(bookmarks))
	for _, b := range bookmarks {
		if seen[b.ID] {
			continue
		}
		seen[b.ID] = true
		r.bookmarks = append(r.bookmarks, b)
	}
}

// ApplyRemoteInsert prepends the row carried by an INSERT feed event. If an
// entry with the same id is already present (duplicate delivery, or the row
// reached us some other way) the event is dropped. Returns whether the
// collection changed, so callers know when to notify.
func (r *Reconciler) ApplyRemoteInsert(bookmark *model.Bookmark) bool {
	if bookmark == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(bookmark.ID) >= 0 {
		return false
	}

	r.bookmarks = append([]*model.Bookmark{bookmark}, r.bookmarks...)
	return true
}

// ApplyRemoteDelete removes the row named by a DELETE feed event. Absence is
// a silent no-op: the row was already removed optimistically, or this is a
// duplicate delivery, or it never existed locally. All paths converge on
// "absent".
func (r *Reconciler) ApplyRemoteDelete(bookmarkID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.removeLocked(bookmarkID)
}

// RemoveLocal is the optimistic half of a local delete: the entry disappears
// immediately, before the corresponding feed event lands. The later DELETE
// event then no-ops through ApplyRemoteDelete.
func (r *Reconciler) RemoveLocal(bookmarkID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.removeLocked(bookmarkID)
}

// Snapshot returns a fresh copy of the collection in its current order.
// Callers must not assume entries are shared between snapshots.
func (r *Reconciler) Snapshot() []*model.Bookmark {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]*model.Bookmark, len(r.bookmarks))
	copy(snapshot, r.bookmarks)
	return snapshot
}

// Len returns the current collection size
func (r *Reconciler) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.bookmarks)
}

func (r *Reconciler) indexOf(bookmarkID string) int {
	for i, b := range r.bookmarks {
		if b.ID == bookmarkID {
			return i
		}
	}
	return -1
}

func (r *Reconciler) removeLocked(bookmarkID string) bool {
	i := r.indexOf(bookmarkID)
	if i < 0 {
		return false
	}
	r.bookmarks = append(r.bookmarks[:i], r.bookmarks[i+1:]...)
	return true
}
