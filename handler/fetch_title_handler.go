package handler

import (
	"net/http"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// FetchTitleHandler prefetches a page title for the creation form:
// GET /api/fetch-title?url=... . Scrape failures are not errors, the title
// just comes back null; only a missing or unparseable url param is rejected.
func FetchTitleHandler(c *gin.Context, titleFetcher *services.TitleFetcher) {
	url := c.Query("url")
	if url == "" {
		utils.BadRequest(c, "No URL provided")
		return
	}

	if !utils.ValidateURL(url) {
		utils.BadRequest(c, "Invalid URL")
		return
	}

	title := titleFetcher.FetchTitle(c.Request.Context(), url)
	if title == "" {
		c.JSON(http.StatusOK, gin.H{"title": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"title": title})
}
