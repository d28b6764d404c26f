// internal/services/container.go
// Service container provides dependency injection for all business logic services.
// This pattern makes testing easier and keeps services loosely coupled.

package services

import (
	"errors"
	"log"

	"github.com/dcnick3/breakgt/internal/config"
	"github.com/dcnick3/breakgt/internal/database"
)

// Container holds all service instances and provides them to handlers
type Container struct {
	Auth  *AuthService
	Cache *CacheService
}

// NewContainer creates a new service container with all dependencies
func NewContainer(db *database.Connections, cfg *config.Config, logger *log.Logger) *Container {
	cache := NewCacheService(db.Redis, logger)
	auth := NewAuthService(cfg.Auth)

	return &Container{
		Auth:  auth,
		Cache: cache,
	}
}

// Common errors used across services
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidToken = errors.New("invalid token")
)
