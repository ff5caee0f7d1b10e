package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronova/craft-stash/internal/config"
	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/internal/service"
)

func TestNewHandlers_CreatesHTTPHandler(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, config.Server{HTTPAddress: "localhost:8080"}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddressFails(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, handlers)
}
