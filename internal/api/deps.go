// internal/api/deps.go
// Bundles every dependency the domain handlers need, in place of the
// teacher's single services.Container since this domain's components span
// several packages (matchmaker, aggregator, store, broadcast).

package api

import (
	"github.com/dcnick3/breakgt/internal/broadcast"
	"github.com/dcnick3/breakgt/internal/config"
	"github.com/dcnick3/breakgt/internal/matchmaker"
	"github.com/dcnick3/breakgt/internal/services"
	"github.com/dcnick3/breakgt/internal/store"
)

// Deps holds every handler dependency.
type Deps struct {
	Services    *services.Container
	Submissions *store.SubmissionStore
	Rounds      *store.RoundResultStore
	Engine      *matchmaker.Engine
	Hub         *broadcast.Hub
	Config      *config.Config
}
