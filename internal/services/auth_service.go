// internal/services/auth_service.go
// Session issuance and validation. The production system fronts this with
// an OpenID Connect provider; this deployment exposes a direct dev-login
// that mints a session for any caller-supplied user id, grounded on the
// same JWT shape the rest of the stack expects.

package services

import (
	"github.com/dcnick3/breakgt/internal/config"
	"github.com/dcnick3/breakgt/internal/utils"
)

// AuthService issues and validates session tokens.
type AuthService struct {
	config config.AuthConfig
}

// NewAuthService creates a new auth service.
func NewAuthService(config config.AuthConfig) *AuthService {
	return &AuthService{config: config}
}

// IssueToken mints a signed session token for userID.
func (s *AuthService) IssueToken(userID string) (string, error) {
	return utils.GenerateJWT(userID, s.config.JWTSecret, s.config.JWTExpiration)
}

// ValidateToken validates a session token and returns the user id it carries.
func (s *AuthService) ValidateToken(token string) (string, error) {
	userID, err := utils.ValidateJWT(token, s.config.JWTSecret)
	if err != nil {
		return "", ErrInvalidToken
	}
	return userID, nil
}
