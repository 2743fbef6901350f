package handler

import (
	"errors"
	"log"
	"net/http"
	"os"

	"main/dto"
	"main/middleware"
	"main/model"
	"main/services"
	"main/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		allowed := os.Getenv("CORS_ALLOWED_ORIGIN")
		if allowed == "" {
			return true
		}
		return r.Header.Get("Origin") == allowed
	},
}

// syncClientMessage is what a connected client may send: a mutation, a view
// change, or a notification dismissal.
type syncClientMessage struct {
	Action string `json:"action"` // create | delete | set_view | dismiss

	// create
	URL   string   `json:"url,omitempty"`
	Title string   `json:"title,omitempty"`
	Tags  []string `json:"tags,omitempty"`

	// delete / dismiss
	ID string `json:"id,omitempty"`

	// set_view
	Query string `json:"q,omitempty"`
	Tag   string `json:"tag,omitempty"`
	Sort  string `json:"sort,omitempty"`
}

// syncServerMessage is the rendered state pushed after every change: the
// projected bookmark list plus the live notification stack.
type syncServerMessage struct {
	Type          string                `json:"type"`
	Bookmarks     []dto.BookmarkResponse `json:"bookmarks"`
	Total         int                   `json:"total"`
	Filtered      int                   `json:"filtered"`
	Tags          []string              `json:"tags,omitempty"`
	Notifications []*model.Notification `json:"notifications,omitempty"`
}

// SyncHandler upgrades to a WebSocket and runs one sync session for its
// lifetime: seed from the store, subscribe to the user's change feed, then
// push a fresh snapshot whenever local mutations or feed events change the
// reconciled collection. The subscription is torn down exactly once when the
// socket goes away.
func SyncHandler(c *gin.Context, bookmarksService *usecase.BookmarksService, feed *services.RedisChangeFeed) {
	userID := c.GetString("user_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade sync connection: %v", err)
		return
	}
	defer conn.Close()

	middleware.ActiveSyncSessions.Inc()
	defer middleware.ActiveSyncSessions.Dec()

	ctx := c.Request.Context()

	notifications := services.NewNotificationQueue(0)
	defer notifications.Close()

	session := usecase.NewSyncSession(bookmarksService, notifications, userID)

	// Coalescing change signal: the writer goroutine owns all writes to the
	// socket, so state changes only ever nudge it.
	changes := make(chan struct{}, 1)
	signal := func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	}
	session.SetOnChange(signal)
	notifications.SetOnChange(signal)

	if err := session.Load(ctx); err != nil {
		log.Printf("Failed to seed sync session for user %s: %v", userID, err)
		conn.WriteJSON(gin.H{"type": "error", "error": "Failed to load bookmarks"})
		return
	}

	sub, err := feed.Subscribe(ctx, userID,
		func(bookmark *model.Bookmark) {
			middleware.TrackFeedEvent(string(model.ChangeEventInsert))
			session.OnRemoteInsert(bookmark)
		},
		func(bookmarkID string) {
			middleware.TrackFeedEvent(string(model.ChangeEventDelete))
			session.OnRemoteDelete(bookmarkID)
		},
	)
	if err != nil {
		log.Printf("Failed to subscribe sync session for user %s: %v", userID, err)
		conn.WriteJSON(gin.H{"type": "error", "error": "Failed to subscribe to updates"})
		return
	}
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-changes:
				msg := renderSnapshot(session, notifications)
				if err := conn.WriteJSON(msg); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	// Initial snapshot
	signal()

	for {
		var msg syncClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		handleClientMessage(c, session, notifications, msg)
	}
	close(done)
}

func handleClientMessage(c *gin.Context, session *usecase.SyncSession, notifications *services.NotificationQueue, msg syncClientMessage) {
	ctx := c.Request.Context()

	switch msg.Action {
	case "create":
		if _, err := session.CreateBookmark(ctx, msg.URL, msg.Title, msg.Tags); err != nil {
			notifications.Push(userFacingError(err), model.SeverityError)
			return
		}
		middleware.TrackBookmarkOperation("create")
	case "delete":
		if err := session.DeleteBookmark(ctx, msg.ID); err != nil {
			notifications.Push(userFacingError(err), model.SeverityError)
			return
		}
		middleware.TrackBookmarkOperation("delete")
	case "set_view":
		session.SetView(msg.Query, msg.Tag, usecase.ParseSortOrder(msg.Sort))
	case "dismiss":
		notifications.Dismiss(msg.ID)
	default:
		log.Printf("Ignoring sync message with unknown action %q", msg.Action)
	}
}

func renderSnapshot(session *usecase.SyncSession, notifications *services.NotificationQueue) syncServerMessage {
	view := session.View()
	return syncServerMessage{
		Type:          "snapshot",
		Bookmarks:     dto.ToBookmarkResponses(view),
		Total:         session.Total(),
		Filtered:      len(view),
		Tags:          session.Tags(),
		Notifications: notifications.Active(),
	}
}

// userFacingError turns a failed mutation into notification text. Validation
// details are safe to show; everything else gets a generic message.
func userFacingError(err error) string {
	switch {
	case usecase.IsValidationError(err):
		return err.Error()
	case errors.Is(err, usecase.ErrNotAuthenticated):
		return "Not authenticated"
	default:
		return "Something went wrong. Please try again."
	}
}
