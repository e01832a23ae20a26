// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import "github.com/gin-gonic/gin"

// Health handles the /health liveness endpoint. It never touches the
// account store, so it reports liveness even when the service runs
// degraded, and it responds appropriately to each HTTP method while
// preventing caching.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "ok", "message": "Server is running"})
	}
}
