// Package server initializes and runs the lab-access backend. It wires
// the credential store, the lockout tracker and the TLS listener, seeds
// the fixed instructor accounts and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/labkeeper/internal/filex"
	"github.com/dmitrijs2005/labkeeper/internal/logging"
	"github.com/dmitrijs2005/labkeeper/internal/server/accounts"
	"github.com/dmitrijs2005/labkeeper/internal/server/config"
	"github.com/dmitrijs2005/labkeeper/internal/server/lockout"
	"github.com/dmitrijs2005/labkeeper/internal/server/shared/db"
	"github.com/dmitrijs2005/labkeeper/internal/server/tcp"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	accountService *accounts.Service
}

func NewApp(c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	manager, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	tracker := lockout.NewTracker(c.MaxFailedAttempts, c.LockoutWindow)
	as := accounts.NewService(manager.Accounts(), tracker, c, logger)

	return &App{config: c, logger: logger, accountService: as}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startTCPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := tcp.NewServer(app.config, app.accountService, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	if err := filex.EnsureDir(app.config.StudentDirRoot); err != nil {
		app.logger.Error(ctx, err.Error())
		return
	}

	if err := app.accountService.SeedInstructors(ctx, app.config.Instructors); err != nil {
		app.logger.Error(ctx, err.Error())
		return
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startTCPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
