// internal/api/submit_handler.go
// Accepts a raw source upload, validates it against the fixed dummy
// opponents, and persists it with the resulting valid flag. Mirrors the
// original submit handler's upload-limit check and tuple-shaped response.

package api

import (
	"io"
	"net/http"
	"time"

	"github.com/dcnick3/breakgt/internal/models"
	"github.com/dcnick3/breakgt/internal/validator"

	"github.com/gin-gonic/gin"
)

// submitResponse mirrors the original [accepted, message, matches] tuple.
type submitResponse struct {
	accepted bool
	message  string
	matches  []validator.PlayerMatchPair
}

func (r submitResponse) MarshalJSON() ([]byte, error) {
	var matchesJSON interface{}
	if r.matches != nil {
		pairs := make([][2]models.PlayerResult, len(r.matches))
		for i, p := range r.matches {
			pairs[i] = [2]models.PlayerResult{p.Player, p.Opponent}
		}
		matchesJSON = pairs
	}
	return jsonMarshalTuple(r.accepted, r.message, matchesJSON)
}

// HandleSubmit validates and stores a new strategy submission.
func HandleSubmit(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		body, err := io.ReadAll(io.LimitReader(c.Request.Body, deps.Config.Sandbox.UploadLimit+1))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
			return
		}
		if int64(len(body)) > deps.Config.Sandbox.UploadLimit {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload is too large"})
			return
		}
		code := string(body)
		uid := userID.(string)

		result, err := validator.Validate(c.Request.Context(), deps.Engine, uid, code)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "validation failed unexpectedly"})
			return
		}

		if _, err := deps.Submissions.Add(c.Request.Context(), models.Submission{
			UserID:   uid,
			Code:     code,
			Datetime: time.Now().UTC(),
			Valid:    result.Valid,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store submission"})
			return
		}

		c.JSON(http.StatusOK, submitResponse{accepted: result.Valid, message: result.Message, matches: result.Matches})
	}
}
