package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"main/services"

	"github.com/gin-gonic/gin"
)

func setupFetchTitleRouter(fetcher *services.TitleFetcher) *gin.Engine {
	router := gin.New()
	router.GET("/api/fetch-title", func(c *gin.Context) {
		FetchTitleHandler(c, fetcher)
	})
	return router
}

func TestFetchTitleHandler(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>Remote Page</title></head></html>`)
	}))
	defer page.Close()

	router := setupFetchTitleRouter(services.NewTitleFetcher())

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantTitle  interface{}
	}{
		{
			name:       "Reachable page",
			target:     "/api/fetch-title?url=" + page.URL,
			wantStatus: http.StatusOK,
			wantTitle:  "Remote Page",
		},
		{
			name:       "Missing url param",
			target:     "/api/fetch-title",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Relative url",
			target:     "/api/fetch-title?url=example.com",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Unreachable host yields null title",
			target:     "/api/fetch-title?url=http://127.0.0.1:1",
			wantStatus: http.StatusOK,
			wantTitle:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp["title"] != tt.wantTitle {
				t.Errorf("title = %v, want %v", resp["title"], tt.wantTitle)
			}
		})
	}
}
