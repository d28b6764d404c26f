// internal/api/events_handler.go
// Server-Sent Events stream: a "scoreboard" event on every publication,
// plus a "matches" event for authenticated subscribers. On connect it
// emits the hub's most recently published snapshot, if one has been
// published since the process started; it does not read persisted rounds,
// so before the first scheduler publication nothing is sent on connect.
// It then streams subsequent publications until the client disconnects.

package api

import (
	"io"

	"github.com/dcnick3/breakgt/internal/aggregator"

	"github.com/gin-gonic/gin"
)

// HandleEvents streams live scoreboard/match updates over SSE.
func HandleEvents(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticated, _ := c.Get("authenticated")
		var userID string
		if uid, ok := c.Get("user_id"); ok {
			userID = uid.(string)
		}

		sub := deps.Hub.Subscribe()
		defer deps.Hub.Unsubscribe(sub)

		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")

		c.Stream(func(w io.Writer) bool {
			select {
			case <-c.Request.Context().Done():
				return false
			case snap, ok := <-sub.C():
				if !ok {
					return false
				}
				c.SSEvent("scoreboard", snap.Scoreboard)
				if authenticated == true && userID != "" {
					view := aggregator.ComputeMatches(snap.Rounds, snap.Scoreboard, userID)
					c.SSEvent("matches", view)
				}
				return true
			}
		})
	}
}
