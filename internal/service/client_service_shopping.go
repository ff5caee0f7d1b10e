package service

import (
	"context"

	"github.com/avoronova/craft-stash/internal/adapter"
	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/models"
)

// clientShoppingService fetches the computed shopping list from the server.
type clientShoppingService struct {
	serverAdapter adapter.ServerAdapter
	logger        *logger.Logger
}

// NewClientShoppingService wires the shopping-list screen to the server
// adapter.
func NewClientShoppingService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientShoppingService {
	return &clientShoppingService{
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

func (s *clientShoppingService) ShoppingList(ctx context.Context) ([]models.ShoppingItem, error) {
	return s.serverAdapter.ShoppingList(ctx)
}
