// internal/api/auth_handler.go
// Supplemental dev-login endpoint, issuing the same session shape a
// production OpenID Connect callback would, without an external provider.

package api

import (
	"net/http"

	"github.com/dcnick3/breakgt/internal/models"
	"github.com/dcnick3/breakgt/internal/services"
	"github.com/dcnick3/breakgt/internal/utils"

	"github.com/gin-gonic/gin"
)

// HandleDevLogin issues a session token for any caller-supplied user id.
func HandleDevLogin(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.DevLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}
		if err := utils.ValidateUserID(req.UserID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		token, err := auth.IssueToken(req.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue session"})
			return
		}

		c.JSON(http.StatusOK, models.Session{Token: token})
	}
}

// HandleMe returns the identity carried by the caller's session, or a null
// user when the request carries no valid session.
func HandleMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticated, _ := c.Get("authenticated")
		if authenticated != true {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}

		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user": models.User{ID: userID.(string)}})
	}
}
