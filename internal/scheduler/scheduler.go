// internal/scheduler/scheduler.go
// Drives the periodic tournament round: on every tick it fetches the
// active submissions, assembles and runs a match program, persists the
// result, recomputes the scoreboard, and publishes both to subscribers.
// Single-writer: only the goroutine running Run ever calls tick.

package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/dcnick3/breakgt/internal/aggregator"
	"github.com/dcnick3/breakgt/internal/matchmaker"
	"github.com/dcnick3/breakgt/internal/models"
	"github.com/dcnick3/breakgt/internal/store"
)

// Publisher receives the scoreboard/round snapshot after every successful
// tick. Implemented by internal/broadcast.Hub.
type Publisher interface {
	Publish(rounds []models.StoredRoundResult, scoreboard models.Scoreboard)
}

// Scheduler owns the round-execution tick loop.
type Scheduler struct {
	submissions *store.SubmissionStore
	rounds      *store.RoundResultStore
	engine      *matchmaker.Engine
	publisher   Publisher
	interval    time.Duration
	window      int
	logger      *log.Logger
}

// NewScheduler constructs a Scheduler from its dependencies.
func NewScheduler(
	submissions *store.SubmissionStore,
	rounds *store.RoundResultStore,
	engine *matchmaker.Engine,
	publisher Publisher,
	interval time.Duration,
	window int,
	logger *log.Logger,
) *Scheduler {
	return &Scheduler{
		submissions: submissions,
		rounds:      rounds,
		engine:      engine,
		publisher:   publisher,
		interval:    interval,
		window:      window,
		logger:      logger,
	}
}

// Run ticks every interval until ctx is cancelled. Missed ticks are not
// queued or replayed.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs exactly one round, logging and skipping on failure so the
// scheduler keeps running.
func (s *Scheduler) tick(ctx context.Context) {
	start := time.Now()
	s.logger.Println("scheduler: starting round")

	active, err := s.submissions.ActiveSubmissions(ctx)
	if err != nil {
		s.logger.Printf("scheduler: fetch active submissions: %v", err)
		return
	}
	s.logger.Printf("scheduler: found %d eligible strategies", len(active))

	players := make(map[string]string, len(active))
	participants := make(map[string]int64, len(active))
	for _, a := range active {
		players[a.UserID] = a.Code
		participants[a.UserID] = a.SubmissionID
	}

	program := matchmaker.MakeMatchProgram(players)

	result, err := s.engine.RunMatchProgram(ctx, program)
	if err != nil {
		s.logger.Printf("scheduler: round failed: %v", err)
		return
	}

	datetime := time.Now().UTC()
	if _, err := s.rounds.Add(ctx, result, participants, datetime); err != nil {
		s.logger.Printf("scheduler: persist round: %v", err)
		return
	}

	recent, err := s.rounds.LastRounds(ctx, s.window)
	if err != nil {
		s.logger.Printf("scheduler: fetch recent rounds: %v", err)
		return
	}

	scoreboard := aggregator.ComputeScoreboard(recent)
	s.publisher.Publish(recent, scoreboard)

	s.logger.Printf("scheduler: round completed in %s", time.Since(start))
}
