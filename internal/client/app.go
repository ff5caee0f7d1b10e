package client

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/avoronova/craft-stash/internal/config"
	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/internal/service"
	"github.com/avoronova/craft-stash/internal/store"
	"github.com/avoronova/craft-stash/internal/tui"
	"github.com/avoronova/craft-stash/internal/workers"
)

// App is the client application: the TUI plus the services and background
// workers behind it.
type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	tui      *tui.TUI
	logger   *logger.Logger
}

// NewApp assembles the client runtime from already wired services and UI.
func NewApp(services *service.ClientServices, ui *tui.TUI, cfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client services and ui are required")
	}

	return &App{
		services: services,
		workers:  workers.NewWorkers(services, cfg, log),
		tui:      ui,
		logger:   log,
	}, nil
}

// Run restores or establishes a session, starts the cache refresh worker,
// and hands control to the main loop. On logout it starts over with a fresh
// login flow.
func (a *App) Run() error {
	ctx := context.Background()

	if _, err := a.services.AuthService.RestoreSession(ctx); err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			return fmt.Errorf("restore session: %w", err)
		}
		if _, err = a.tui.LoginFlow(ctx); err != nil {
			return err
		}
	}

	if err := a.services.SupplyService.RefreshCache(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "cache refresh warning: %v\n", err)
	}

	a.workers.Run(ctx)
	defer a.workers.Stop()

	logout, err := a.tui.MainLoop(ctx)
	if err != nil {
		return err
	}
	if logout {
		if err = a.services.AuthService.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		a.workers.Stop()
		return a.Run()
	}

	return nil
}
