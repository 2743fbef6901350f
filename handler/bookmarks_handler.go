package handler

import (
	"errors"

	"main/dto"
	"main/middleware"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// writeBookmarkError maps a service failure onto the wire. Validation
// problems go back inline; anything transport-shaped is a 500 the view layer
// turns into an error toast.
func writeBookmarkError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotAuthenticated):
		middleware.TrackError("auth")
		utils.Unauthorized(c, "Not authenticated")
	case usecase.IsValidationError(err):
		utils.BadRequest(c, err.Error())
	default:
		middleware.TrackError("db")
		utils.InternalError(c, "Something went wrong. Please try again.")
	}
}

func CreateBookmarkHandler(c *gin.Context, bookmarksService *usecase.BookmarksService) {
	var req dto.CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	bookmark := &model.Bookmark{
		UserID: c.GetString("user_id"),
		URL:    req.URL,
		Title:  req.Title,
		Tags:   req.Tags,
	}

	timer := middleware.TrackDBOperation("insert", "bookmarks")
	if err := bookmarksService.CreateBookmark(c.Request.Context(), bookmark); err != nil {
		timer.ObserveDuration()
		writeBookmarkError(c, err)
		return
	}
	timer.ObserveDuration()

	middleware.TrackBookmarkOperation("create")
	utils.Created(c, dto.ToBookmarkResponse(bookmark))
}

func DeleteBookmarkHandler(c *gin.Context, bookmarksService *usecase.BookmarksService) {
	bookmarkID := c.Param("id")
	userID := c.GetString("user_id")

	timer := middleware.TrackDBOperation("delete", "bookmarks")
	if err := bookmarksService.DeleteBookmark(c.Request.Context(), bookmarkID, userID); err != nil {
		timer.ObserveDuration()
		writeBookmarkError(c, err)
		return
	}
	timer.ObserveDuration()

	middleware.TrackBookmarkOperation("delete")
	utils.Success(c, gin.H{"message": "Bookmark deleted successfully"})
}

// GetUserBookmarksHandler lists the caller's bookmarks with the projection
// applied: ?q= free-text search, ?tag= tag filter, ?sort= newest | oldest |
// alphabetical.
func GetUserBookmarksHandler(c *gin.Context, bookmarksService *usecase.BookmarksService) {
	userID := c.GetString("user_id")

	timer := middleware.TrackDBOperation("find", "bookmarks")
	bookmarks, err := bookmarksService.GetUserBookmarks(c.Request.Context(), userID)
	timer.ObserveDuration()
	if err != nil {
		writeBookmarkError(c, err)
		return
	}

	projection := usecase.Projection{
		Query: c.Query("q"),
		Tag:   c.Query("tag"),
		Sort:  usecase.ParseSortOrder(c.Query("sort")),
	}
	projected := projection.Apply(bookmarks)

	middleware.TrackBookmarkOperation("list")
	utils.Success(c, dto.BookmarkListResponse{
		Bookmarks: dto.ToBookmarkResponses(projected),
		Total:     len(bookmarks),
		Filtered:  len(projected),
		Tags:      usecase.AllTags(bookmarks),
	})
}

func GetUserTagsHandler(c *gin.Context, bookmarksService *usecase.BookmarksService) {
	userID := c.GetString("user_id")

	tags, err := bookmarksService.GetUserTags(c.Request.Context(), userID)
	if err != nil {
		writeBookmarkError(c, err)
		return
	}

	utils.Success(c, tags)
}
