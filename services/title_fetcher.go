package services

import (
	"context"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const (
	titleFetchTimeout   = 5 * time.Second
	titleFetchUserAgent = "Mozilla/5.0 (compatible; BookmarkBot/1.0)"

	// Titles live in <head>; no need to download more than this
	titleFetchMaxBody = 512 * 1024
)

var (
	titleRe      = regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)
	ogTitleRe    = regexp.MustCompile(`(?i)<meta[^>]*property=["']og:title["'][^>]*content=["']([^"']+)["']`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// TitleFetcher grabs a page's title to prefill the creation form. Title
// prefill is a convenience, so every failure mode (timeout, refused
// connection, garbage HTML) degrades to "no title available" and is never
// reported as an error.
type TitleFetcher struct {
	Client *http.Client
}

func NewTitleFetcher() *TitleFetcher {
	return &TitleFetcher{
		Client: &http.Client{Timeout: titleFetchTimeout},
	}
}

// FetchTitle returns the page title for url, or "" when none is available
func (f *TitleFetcher) FetchTitle(ctx context.Context, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", titleFetchUserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, titleFetchMaxBody))
	if err != nil {
		return ""
	}

	return ExtractTitle(string(body))
}

// ExtractTitle pulls a display title out of raw HTML, preferring og:title
// metadata over the <title> tag.
func ExtractTitle(html string) string {
	if m := ogTitleRe.FindStringSubmatch(html); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := titleRe.FindStringSubmatch(html); m != nil {
		return whitespaceRe.ReplaceAllString(strings.TrimSpace(m[1]), " ")
	}
	return ""
}
