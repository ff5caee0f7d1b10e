package service

import (
	"github.com/avoronova/craft-stash/internal/adapter"
	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/internal/store"
)

// ClientServices groups the client-side services handed to the TUI.
type ClientServices struct {
	AuthService     ClientAuthService
	SupplyService   ClientSupplyService
	ProjectService  ClientProjectService
	ShoppingService ClientShoppingService
	RefreshJob      ClientRefreshJob
}

// NewClientServices wires the client services to the server adapter and the
// local storage layer.
func NewClientServices(serverAdapter adapter.ServerAdapter, storages *store.ClientStorages, logger *logger.Logger) *ClientServices {
	supplySvc := NewClientSupplyService(serverAdapter, storages, logger)

	return &ClientServices{
		AuthService:     NewClientAuthService(serverAdapter, storages, logger),
		SupplyService:   supplySvc,
		ProjectService:  NewClientProjectService(serverAdapter, logger),
		ShoppingService: NewClientShoppingService(serverAdapter, logger),
		RefreshJob:      NewClientRefreshJob(supplySvc),
	}
}
