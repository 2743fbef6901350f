package usecase

import (
	"sort"
	"strings"

	"main/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortOrder string

const (
	SortNewest       SortOrder = "newest"
	SortOldest       SortOrder = "oldest"
	SortAlphabetical SortOrder = "alphabetical"
)

// ParseSortOrder maps a query-string value onto a SortOrder, defaulting to
// newest-first for anything unrecognized.
func ParseSortOrder(value string) SortOrder {
	switch SortOrder(value) {
	case SortOldest:
		return SortOldest
	case SortAlphabetical:
		return SortAlphabetical
	default:
		return SortNewest
	}
}

// Projection derives the displayed subset of a bookmark collection from the
// active tag filter, free-text search, and sort order. It is a pure
// derivation: Apply never mutates its input and returns a fresh slice on
// every call.
type Projection struct {
	Query string
	Tag   string
	Sort  SortOrder
}

// titleCollator orders titles the way a locale-aware UI would, so "apple"
// sorts before "Banana".
var titleCollator = collate.New(language.English, collate.IgnoreCase)

// Apply filters by tag, then by search query, then sorts. Filtering is
// unaffected by the sort order.
func (p Projection) Apply(bookmarks []*model.Bookmark) []*model.Bookmark {
	result := make([]*model.Bookmark, 0, len(bookmarks))

	for _, b := range bookmarks {
		if p.Tag != "" && !hasTag(b, p.Tag) {
			continue
		}
		if !p.matchesQuery(b) {
			continue
		}
		result = append(result, b)
	}

	switch p.Sort {
	case SortOldest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		})
	case SortAlphabetical:
		sort.SliceStable(result, func(i, j int) bool {
			return titleCollator.CompareString(result[i].Title, result[j].Title) < 0
		})
	default: // newest
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}

	return result
}

func (p Projection) matchesQuery(b *model.Bookmark) bool {
	query := strings.ToLower(strings.TrimSpace(p.Query))
	if query == "" {
		return true
	}

	if strings.Contains(strings.ToLower(b.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(b.URL), query) {
		return true
	}
	for _, tag := range b.Tags {
		if strings.Contains(tag, query) {
			return true
		}
	}
	return false
}

func hasTag(b *model.Bookmark, tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AllTags returns the sorted set of unique tags across a collection, used to
// render the tag filter bar.
func AllTags(bookmarks []*model.Bookmark) []string {
	seen := make(map[string]bool)
	tags := make([]string, 0)
	for _, b := range bookmarks {
		for _, t := range b.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags
}
