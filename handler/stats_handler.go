package handler

import (
	"log"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	bookmarksRepo *repository.BookmarksRepo
}

func NewStatsHandler(bookmarksRepo *repository.BookmarksRepo) *StatsHandler {
	return &StatsHandler{
		bookmarksRepo: bookmarksRepo,
	}
}

func (h *StatsHandler) GetUserStats(c *gin.Context) {
	ctx := c.Request.Context()
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var stats model.UserStats

	total, err := h.bookmarksRepo.CountUserBookmarks(ctx, userID.(string))
	if err != nil {
		log.Printf("Error counting bookmarks: %v", err)
		utils.InternalError(c, "Failed to count bookmarks")
		return
	}
	stats.BookmarkStats.Total = total

	bookmarks, err := h.bookmarksRepo.GetUserBookmarks(ctx, userID.(string))
	if err != nil {
		log.Printf("Error fetching bookmarks for stats: %v", err)
		utils.InternalError(c, "Failed to fetch bookmarks")
		return
	}

	tagCounts := make(map[string]int)
	for _, bookmark := range bookmarks {
		for _, tag := range bookmark.Tags {
			tagCounts[tag]++
		}
	}
	stats.BookmarkStats.TagCounts = tagCounts

	stats.SystemStats.CPUUsagePercent = utils.GetCPUUsage()
	stats.SystemStats.MemoryUsagePercent = utils.GetMemoryUsage()

	utils.Success(c, stats)
}
