package services

import (
	"encoding/json"
	"testing"

	"main/model"
)

func TestDispatchEventInsert(t *testing.T) {
	payload, _ := json.Marshal(model.ChangeEvent{
		Type: model.ChangeEventInsert,
		Bookmark: &model.Bookmark{
			ID:    "b-1",
			URL:   "https://example.com",
			Title: "Example",
		},
	})

	var inserted *model.Bookmark
	dispatchEvent(string(payload),
		func(b *model.Bookmark) { inserted = b },
		func(id string) { t.Errorf("onDelete called for an INSERT event (id %q)", id) },
	)

	if inserted == nil || inserted.ID != "b-1" {
		t.Errorf("onInsert got %+v, want the carried row", inserted)
	}
}

func TestDispatchEventDelete(t *testing.T) {
	payload, _ := json.Marshal(model.ChangeEvent{
		Type:       model.ChangeEventDelete,
		BookmarkID: "b-2",
	})

	var deleted string
	dispatchEvent(string(payload),
		func(b *model.Bookmark) { t.Errorf("onInsert called for a DELETE event (%+v)", b) },
		func(id string) { deleted = id },
	)

	if deleted != "b-2" {
		t.Errorf("onDelete got %q, want b-2", deleted)
	}
}

func TestDispatchEventMalformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "Not JSON", payload: "{{{"},
		{name: "Unknown type", payload: `{"type":"UPSERT"}`},
		{name: "Insert without row", payload: `{"type":"INSERT"}`},
		{name: "Delete without id", payload: `{"type":"DELETE"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A bad payload must invoke neither callback and must not panic
			dispatchEvent(tt.payload,
				func(b *model.Bookmark) { t.Error("onInsert called") },
				func(id string) { t.Error("onDelete called") },
			)
		})
	}
}

func TestFeedChannelIsPerUser(t *testing.T) {
	a := feedChannel("user-a")
	b := feedChannel("user-b")
	if a == b {
		t.Error("different users share a feed channel")
	}
	if a != "bookmarks:feed:user-a" {
		t.Errorf("feedChannel = %q", a)
	}
}
