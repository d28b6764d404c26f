// internal/api/scoreboard_handler.go
// Returns the current scoreboard, derived fresh from the configured
// window of recent rounds.

package api

import (
	"net/http"

	"github.com/dcnick3/breakgt/internal/aggregator"

	"github.com/gin-gonic/gin"
)

// HandleGetScoreboard serves the current scoreboard.
func HandleGetScoreboard(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		rounds, err := deps.Rounds.LastRounds(c.Request.Context(), deps.Config.Tournament.ScoreboardWindow)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute scoreboard"})
			return
		}

		c.JSON(http.StatusOK, aggregator.ComputeScoreboard(rounds))
	}
}
