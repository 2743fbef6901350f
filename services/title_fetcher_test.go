package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "Title tag",
			html: `<html><head><title>Example Page</title></head></html>`,
			want: "Example Page",
		},
		{
			name: "Title with attributes and messy whitespace",
			html: "<html><head><title data-x=\"1\">  Example\n\t Page  </title></head></html>",
			want: "Example Page",
		},
		{
			name: "og:title preferred over title",
			html: `<head><meta property="og:title" content="OG Title"><title>Plain Title</title></head>`,
			want: "OG Title",
		},
		{
			name: "og:title with single quotes",
			html: `<head><meta property='og:title' content='OG Title'></head>`,
			want: "OG Title",
		},
		{
			name: "Case-insensitive matching",
			html: `<HEAD><TITLE>Shouty</TITLE></HEAD>`,
			want: "Shouty",
		},
		{
			name: "No title anywhere",
			html: `<html><body>nothing here</body></html>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTitle(tt.html); got != tt.want {
				t.Errorf("ExtractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFetchTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != titleFetchUserAgent {
			t.Errorf("User-Agent = %q, want %q", ua, titleFetchUserAgent)
		}
		w.Write([]byte(`<html><head><title>Fetched Title</title></head></html>`))
	}))
	defer server.Close()

	fetcher := NewTitleFetcher()
	if got := fetcher.FetchTitle(context.Background(), server.URL); got != "Fetched Title" {
		t.Errorf("FetchTitle() = %q, want %q", got, "Fetched Title")
	}
}

func TestFetchTitleSoftFailures(t *testing.T) {
	fetcher := NewTitleFetcher()

	// Connection refused: the server is closed before the fetch
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	if got := fetcher.FetchTitle(context.Background(), url); got != "" {
		t.Errorf("FetchTitle() on a dead server = %q, want empty", got)
	}

	// Garbage URL
	if got := fetcher.FetchTitle(context.Background(), "http://\x00invalid"); got != "" {
		t.Errorf("FetchTitle() on a garbage URL = %q, want empty", got)
	}
}

func TestFetchTitleTimeout(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`<title>Too Late</title>`))
	}))
	defer slow.Close()

	fetcher := &TitleFetcher{Client: &http.Client{Timeout: 50 * time.Millisecond}}
	if got := fetcher.FetchTitle(context.Background(), slow.URL); got != "" {
		t.Errorf("FetchTitle() past the timeout = %q, want empty", got)
	}
}
