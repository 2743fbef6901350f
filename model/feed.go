package model

type ChangeEventType string

const (
	ChangeEventInsert ChangeEventType = "INSERT"
	ChangeEventDelete ChangeEventType = "DELETE"
)

// ChangeEvent is a row-level change notification carried by the per-user
// change feed. INSERT events carry the full row; DELETE events carry only
// the prior row's id. Delivery is roughly commit-ordered and may duplicate,
// so consumers must apply events idempotently.
type ChangeEvent struct {
	Type       ChangeEventType `json:"type"`
	Bookmark   *Bookmark       `json:"bookmark,omitempty"`
	BookmarkID string          `json:"bookmark_id,omitempty"`
}
