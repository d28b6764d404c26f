// internal/models/user.go
// User is the minimal identity carried by a session; the core only needs a
// stable id to key submissions and scoreboard positions.

package models

// User is the session-bound identity of a request.
type User struct {
	ID string `json:"username"`
}

// DevLoginRequest is the body of the supplemental dev-login endpoint that
// issues a session in place of the excluded OIDC flow.
type DevLoginRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// Session is the signed session token handed back by dev-login.
type Session struct {
	Token string `json:"token"`
}
