// cmd/server/main.go
// This is the main entry point for the tournament backend server. It
// initializes all dependencies, starts the background round scheduler, and
// serves the HTTP API.

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/docker/docker/client"

	"github.com/dcnick3/breakgt/internal/api"
	"github.com/dcnick3/breakgt/internal/broadcast"
	"github.com/dcnick3/breakgt/internal/config"
	"github.com/dcnick3/breakgt/internal/database"
	"github.com/dcnick3/breakgt/internal/execution"
	"github.com/dcnick3/breakgt/internal/matchmaker"
	"github.com/dcnick3/breakgt/internal/sandbox"
	"github.com/dcnick3/breakgt/internal/scheduler"
	"github.com/dcnick3/breakgt/internal/server"
	"github.com/dcnick3/breakgt/internal/services"
	"github.com/dcnick3/breakgt/internal/store"
)

func main() {
	// Load configuration from environment variables and config files
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up structured logging based on environment
	logger := setupLogger(cfg.Environment)

	// Initialize database connections with retry logic
	dbConnections, err := initializeDatabases(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize databases: %v", err)
	}
	defer dbConnections.Close()

	if cfg.Database.AutoMigrate {
		if err := store.Migrate(dbConnections.MySQL); err != nil {
			logger.Fatalf("Failed to run migrations: %v", err)
		}
	}

	dockerCli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		logger.Fatalf("Failed to create Docker client: %v", err)
	}
	driver := sandbox.New(dockerCli)
	compiler := execution.NewCompiler(driver, cfg.Sandbox.CompilerImage, cfg.Sandbox.CompileTimeout)
	runner := execution.NewRunner(driver, cfg.Sandbox.RunnerImage, cfg.Sandbox.RunTimeout)
	engine := matchmaker.NewEngine(compiler, runner)

	submissions := store.NewSubmissionStore(dbConnections.MySQL)
	rounds := store.NewRoundResultStore(dbConnections.MySQL)

	var bg sync.WaitGroup

	hub := broadcast.NewHub(logger)
	hubDone := make(chan struct{})
	bg.Add(1)
	go func() {
		defer bg.Done()
		hub.Run(hubDone)
	}()

	sched := scheduler.NewScheduler(submissions, rounds, engine, hub, cfg.Tournament.RoundInterval, cfg.Tournament.ScoreboardWindow, logger)
	schedCtx, schedCancel := context.WithCancel(context.Background())
	bg.Add(1)
	go func() {
		defer bg.Done()
		sched.Run(schedCtx)
	}()

	deps := &api.Deps{
		Services:    services.NewContainer(dbConnections, cfg, logger),
		Submissions: submissions,
		Rounds:      rounds,
		Engine:      engine,
		Hub:         hub,
		Config:      cfg,
	}

	// Create and configure the HTTP server with all dependencies
	srv := server.New(cfg, deps, logger)

	// Start server in a goroutine to allow for graceful shutdown
	go func() {
		logger.Printf("Starting server on port %s in %s mode", cfg.Server.Port, cfg.Environment)
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server and its
	// background goroutines
	gracefulShutdown(srv, schedCancel, hubDone, &bg, logger)
}

// initializeDatabases sets up all database connections with health checks
func initializeDatabases(cfg *config.Config, logger *log.Logger) (*database.Connections, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return database.Initialize(ctx, database.Config{
		MySQL: database.MySQLConfig{
			DSN:             cfg.Database.MySQL.DSN,
			MaxOpenConns:    cfg.Database.MySQL.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MySQL.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.MySQL.ConnMaxLifetime,
		},
		Redis: database.RedisConfig{
			Addr:     cfg.Database.Redis.Addr,
			Password: cfg.Database.Redis.Password,
			DB:       cfg.Database.Redis.DB,
		},
	}, logger)
}

// setupLogger configures structured logging based on the environment
func setupLogger(env string) *log.Logger {
	// In production, you might want to use a more sophisticated logger
	// like zap or logrus for structured logging
	logger := log.New(os.Stdout, "[breakgt] ", log.LstdFlags|log.Lshortfile)

	if env == "production" {
		// In production, you might want to:
		// - Output JSON formatted logs
		// - Send logs to a centralized logging service
		// - Set appropriate log levels
	}

	return logger
}

// gracefulShutdown handles graceful shutdown of the server and its
// background goroutines. It waits for the scheduler's in-flight tick (and
// the hub's run loop) to actually return before the process exits, so a
// SIGTERM arriving mid-tick can't leave a sandboxed container behind.
func gracefulShutdown(srv *server.Server, schedCancel context.CancelFunc, hubDone chan struct{}, bg *sync.WaitGroup, logger *log.Logger) {
	quit := make(chan os.Signal, 1)
	// Listen for interrupt signals
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Println("Shutting down server...")

	schedCancel()
	close(hubDone)
	bg.Wait()

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("Server forced to shutdown: %v", err)
	}

	logger.Println("Server exited")
}
