// internal/api/matches_handler.go
// Returns the authenticated viewer's redacted match history over the
// recent-rounds window.

package api

import (
	"net/http"

	"github.com/dcnick3/breakgt/internal/aggregator"

	"github.com/gin-gonic/gin"
)

// HandleGetMatches serves the caller's PlayerMatches view.
func HandleGetMatches(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		rounds, err := deps.Rounds.LastRounds(c.Request.Context(), deps.Config.Tournament.ScoreboardWindow)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute match history"})
			return
		}

		scoreboard := aggregator.ComputeScoreboard(rounds)
		view := aggregator.ComputeMatches(rounds, scoreboard, userID.(string))

		c.JSON(http.StatusOK, view)
	}
}
