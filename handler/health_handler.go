package handler

import (
	"context"
	"net/http"
	"time"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports whether the datastore and the change feed transport
// are reachable. A down feed degrades sync, not correctness, but it is still
// worth surfacing to operators.
func HealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{
		"mongo": "up",
		"redis": "up",
	}
	healthy := true

	if utils.MongoClient == nil || utils.MongoClient.Ping(ctx, nil) != nil {
		status["mongo"] = "down"
		healthy = false
	}

	if services.ChangeFeed == nil || services.ChangeFeed.Client.Ping(ctx).Err() != nil {
		status["redis"] = "down"
		healthy = false
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	utils.Success(c, status)
}
