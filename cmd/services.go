package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/hxlin/tomato-cli/internal/adapters/git"
	"github.com/hxlin/tomato-cli/internal/adapters/notification"
	"github.com/hxlin/tomato-cli/internal/adapters/storage"
	"github.com/hxlin/tomato-cli/internal/config"
	"github.com/hxlin/tomato-cli/internal/ports"
	"github.com/hxlin/tomato-cli/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	storage  ports.Storage
	tasks    *services.TaskService
	timer    *services.TimerService
	git      ports.GitDetector
	notifier *notification.Notifier
	config   *config.Config
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	// Load configuration
	var err error
	app.config, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		app.config = config.DefaultConfig()
	}

	// Initialize notifier
	app.notifier = notification.New(&app.config.Notifications)

	// Determine database path
	if dbPath == "" {
		dbPath = config.GetDBPath(app.config)
	}

	// Ensure directory exists
	dbDir := getDir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	// Initialize storage
	app.storage, err = storage.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize git detector
	app.git = git.NewDetector()

	// Initialize services
	app.tasks = services.NewTaskService(app.storage)
	app.timer = services.NewTimerService(app.storage, app.notifier, app.git, app.config.Timer.Durations())
	if err := app.timer.Load(context.Background()); err != nil {
		return fmt.Errorf("failed to load timer state: %w", err)
	}

	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.storage != nil {
		return app.storage.Close()
	}
	return nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}

// getDir returns the directory portion of a file path.
func getDir(path string) string {
	return filepath.Dir(path)
}
