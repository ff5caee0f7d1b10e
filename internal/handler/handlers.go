// Package handler aggregates the transport handlers of the server. Only an
// HTTP transport exists today; the aggregate keeps the wiring in one place.
package handler

import (
	"github.com/avoronova/craft-stash/internal/config"
	"github.com/avoronova/craft-stash/internal/handler/http"
	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
