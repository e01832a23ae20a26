package router

import (
	authhandler "movieapp_backend/internal/feature/auth/transport/handler"
	"movieapp_backend/internal/platform/http/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the HTTP routes. CORS is open because the browser
// frontend is served from a different origin.
func NewRouter(authHandler *authhandler.AuthHandler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.Default())

	// Liveness check, no store dependency
	r.GET("/health", handler.Health)
	// Account registration
	r.POST("/register", authHandler.Register)
	// Credential verification
	r.POST("/login", authHandler.Login)

	return r
}
