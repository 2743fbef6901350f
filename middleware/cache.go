package middleware

import "github.com/gin-gonic/gin"

// CacheControlMiddleware marks a route's responses as cacheable for maxAge
// seconds. Used on the title-prefill route, where the response is a pure
// function of the url parameter.
func CacheControlMiddleware(maxAge string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age="+maxAge)
		c.Next()
	}
}
