// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Voronova

// Package tui implements the interactive terminal client built on
// bubbletea. The login flow and the main loop run as separate programs so
// the caller can restore sessions and manage background workers in between.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/internal/service"
	"github.com/avoronova/craft-stash/models"
)

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// LoginFlow runs the welcome/login/register screens and returns the session
// token on success. Returns ErrUserQuit when the user closes the program
// without logging in.
func (t *TUI) LoginFlow(ctx context.Context) (models.Token, error) {
	model := newLoginAppModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Token{}, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return models.Token{}, tea.ErrProgramKilled
	}
	if result.err != nil {
		return models.Token{}, result.err
	}
	if result.token.SignedString == "" {
		return models.Token{}, ErrUserQuit
	}

	return result.token, nil
}

// MainLoop runs the authenticated session. Returns logout=true when the user
// explicitly logged out rather than just quitting.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainAppModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.err != nil && result.err != ErrUserQuit {
		return false, result.err
	}

	return result.logout, nil
}
