// internal/api/routes.go
// Central route registration for all API endpoints

package api

import (
	"github.com/dcnick3/breakgt/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every endpoint under the given router group.
func RegisterRoutes(router *gin.RouterGroup, deps *Deps) {
	auth := deps.Services.Auth

	router.POST("/auth/dev-login", HandleDevLogin(auth))
	router.GET("/me", middleware.OptionalAuth(auth), HandleMe())

	router.POST("/submit", middleware.RequireAuth(auth), HandleSubmit(deps))
	router.GET("/matches", middleware.RequireAuth(auth), HandleGetMatches(deps))
	router.GET("/scoreboard", HandleGetScoreboard(deps))
	router.GET("/events", middleware.OptionalAuth(auth), HandleEvents(deps))
}
