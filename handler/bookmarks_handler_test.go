package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	os.Setenv("GO_ENV", "test")
	gin.SetMode(gin.TestMode)
	utils.InitValidator()
}

// memoryStore backs handler tests without a live datastore
type memoryStore struct {
	bookmarks []*model.Bookmark
	writes    int
}

func (m *memoryStore) CreateBookmark(ctx context.Context, bookmark *model.Bookmark) error {
	m.writes++
	bookmark.ID = utils.GenerateID()
	bookmark.CreatedAt = time.Now()
	m.bookmarks = append(m.bookmarks, bookmark)
	return nil
}

func (m *memoryStore) DeleteBookmark(ctx context.Context, bookmarkID, userID string) (bool, error) {
	for i, b := range m.bookmarks {
		if b.ID == bookmarkID && b.UserID == userID {
			m.bookmarks = append(m.bookmarks[:i], m.bookmarks[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryStore) GetUserBookmarks(ctx context.Context, userID string) ([]*model.Bookmark, error) {
	var result []*model.Bookmark
	for _, b := range m.bookmarks {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (m *memoryStore) CountUserBookmarks(ctx context.Context, userID string) (int, error) {
	bookmarks, _ := m.GetUserBookmarks(ctx, userID)
	return len(bookmarks), nil
}

func (m *memoryStore) GetUserTags(ctx context.Context, userID string) ([]string, error) {
	bookmarks, _ := m.GetUserBookmarks(ctx, userID)
	return usecase.AllTags(bookmarks), nil
}

func setupBookmarksRouter(store *memoryStore) *gin.Engine {
	svc := &usecase.BookmarksService{BookmarksRepo: store}

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Next()
	})
	router.GET("/api/bookmarks", func(c *gin.Context) {
		GetUserBookmarksHandler(c, svc)
	})
	router.POST("/api/bookmarks", func(c *gin.Context) {
		CreateBookmarkHandler(c, svc)
	})
	router.DELETE("/api/bookmarks/:id", func(c *gin.Context) {
		DeleteBookmarkHandler(c, svc)
	})
	return router
}

func TestCreateBookmarkHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantWrites int
	}{
		{
			name:       "Valid bookmark",
			body:       `{"url":"https://example.com","title":"Example","tags":["ref"]}`,
			wantStatus: http.StatusCreated,
			wantWrites: 1,
		},
		{
			name:       "Invalid URL",
			body:       `{"url":"not a url","title":"Example"}`,
			wantStatus: http.StatusBadRequest,
			wantWrites: 0,
		},
		{
			name:       "Whitespace title",
			body:       `{"url":"https://example.com","title":"   "}`,
			wantStatus: http.StatusBadRequest,
			wantWrites: 0,
		},
		{
			name:       "Missing body fields",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantWrites: 0,
		},
		{
			name:       "Tag with forbidden characters",
			body:       `{"url":"https://example.com","title":"Example","tags":["No Spaces!"]}`,
			wantStatus: http.StatusBadRequest,
			wantWrites: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memoryStore{}
			router := setupBookmarksRouter(store)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/bookmarks", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if store.writes != tt.wantWrites {
				t.Errorf("datastore writes = %d, want %d", store.writes, tt.wantWrites)
			}
		})
	}
}

func TestDeleteBookmarkHandlerIdempotent(t *testing.T) {
	store := &memoryStore{}
	router := setupBookmarksRouter(store)

	// Deleting a row that never existed still succeeds
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookmarks/no-such-id", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 for a zero-row delete", w.Code)
	}
}

func TestGetUserBookmarksHandlerProjection(t *testing.T) {
	store := &memoryStore{}
	ctx := context.Background()
	store.CreateBookmark(ctx, &model.Bookmark{UserID: "user-1", URL: "https://go.dev", Title: "Go", Tags: []string{"go"}})
	store.CreateBookmark(ctx, &model.Bookmark{UserID: "user-1", URL: "https://example.com", Title: "Design", Tags: []string{"design"}})
	store.CreateBookmark(ctx, &model.Bookmark{UserID: "someone-else", URL: "https://other.example.com", Title: "Not mine"})

	router := setupBookmarksRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookmarks?tag=design", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Data struct {
			Bookmarks []struct {
				Title string `json:"title"`
			} `json:"bookmarks"`
			Total    int `json:"total"`
			Filtered int `json:"filtered"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Data.Total != 2 {
		t.Errorf("total = %d, want 2 (owner-scoped)", resp.Data.Total)
	}
	if resp.Data.Filtered != 1 || len(resp.Data.Bookmarks) != 1 {
		t.Fatalf("filtered = %d with %d rows, want 1", resp.Data.Filtered, len(resp.Data.Bookmarks))
	}
	if resp.Data.Bookmarks[0].Title != "Design" {
		t.Errorf("projected title = %q, want Design", resp.Data.Bookmarks[0].Title)
	}
}
