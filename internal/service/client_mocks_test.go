package service

import (
	"context"
	"errors"
	"sync"

	"github.com/avoronova/craft-stash/models"
)

var errServerDown = errors.New("server unreachable")

// mockServerAdapter is a function-field mock of adapter.ServerAdapter. Unset
// fields return errServerDown so tests exercise offline fallbacks by
// default.
type mockServerAdapter struct {
	mu    sync.RWMutex
	token string

	registerFn       func(ctx context.Context, user models.User) (models.Token, error)
	loginFn          func(ctx context.Context, user models.User) (models.Token, error)
	listSuppliesFn   func(ctx context.Context, query models.SupplyQuery) (models.SupplyList, error)
	allSuppliesFn    func(ctx context.Context) ([]models.Supply, error)
	createSupplyFn   func(ctx context.Context, supply models.Supply) (models.Supply, error)
	getSupplyFn      func(ctx context.Context, supplyID int64) (models.Supply, error)
	updateSupplyFn   func(ctx context.Context, supply models.Supply) (models.Supply, error)
	deleteSupplyFn   func(ctx context.Context, supplyID int64) error
	listProjectsFn   func(ctx context.Context) ([]models.Project, error)
	createProjectFn  func(ctx context.Context, project models.Project) (models.Project, error)
	getProjectFn     func(ctx context.Context, projectID int64) (models.Project, error)
	updateProjectFn  func(ctx context.Context, project models.Project) (models.Project, error)
	setStatusFn      func(ctx context.Context, projectID int64, status models.ProjectStatus) (models.Project, error)
	deleteProjectFn  func(ctx context.Context, projectID int64) error
	addMaterialFn    func(ctx context.Context, material models.ProjectMaterial) (models.ProjectMaterial, error)
	deleteMaterialFn func(ctx context.Context, projectID, materialID int64) error
	shoppingListFn   func(ctx context.Context) ([]models.ShoppingItem, error)
	lookupFn         func(ctx context.Context, barcode string) (models.CatalogProduct, error)
	convertFn        func(ctx context.Context, value float64, from, to string) (models.Conversion, error)
}

func (m *mockServerAdapter) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

func (m *mockServerAdapter) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *mockServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, user)
	}
	return models.Token{}, errServerDown
}

func (m *mockServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, user)
	}
	return models.Token{}, errServerDown
}

func (m *mockServerAdapter) ListSupplies(ctx context.Context, query models.SupplyQuery) (models.SupplyList, error) {
	if m.listSuppliesFn != nil {
		return m.listSuppliesFn(ctx, query)
	}
	return models.SupplyList{}, errServerDown
}

func (m *mockServerAdapter) AllSupplies(ctx context.Context) ([]models.Supply, error) {
	if m.allSuppliesFn != nil {
		return m.allSuppliesFn(ctx)
	}
	return nil, errServerDown
}

func (m *mockServerAdapter) CreateSupply(ctx context.Context, supply models.Supply) (models.Supply, error) {
	if m.createSupplyFn != nil {
		return m.createSupplyFn(ctx, supply)
	}
	return models.Supply{}, errServerDown
}

func (m *mockServerAdapter) GetSupply(ctx context.Context, supplyID int64) (models.Supply, error) {
	if m.getSupplyFn != nil {
		return m.getSupplyFn(ctx, supplyID)
	}
	return models.Supply{}, errServerDown
}

func (m *mockServerAdapter) UpdateSupply(ctx context.Context, supply models.Supply) (models.Supply, error) {
	if m.updateSupplyFn != nil {
		return m.updateSupplyFn(ctx, supply)
	}
	return models.Supply{}, errServerDown
}

func (m *mockServerAdapter) DeleteSupply(ctx context.Context, supplyID int64) error {
	if m.deleteSupplyFn != nil {
		return m.deleteSupplyFn(ctx, supplyID)
	}
	return errServerDown
}

func (m *mockServerAdapter) ListProjects(ctx context.Context) ([]models.Project, error) {
	if m.listProjectsFn != nil {
		return m.listProjectsFn(ctx)
	}
	return nil, errServerDown
}

func (m *mockServerAdapter) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	if m.createProjectFn != nil {
		return m.createProjectFn(ctx, project)
	}
	return models.Project{}, errServerDown
}

func (m *mockServerAdapter) GetProject(ctx context.Context, projectID int64) (models.Project, error) {
	if m.getProjectFn != nil {
		return m.getProjectFn(ctx, projectID)
	}
	return models.Project{}, errServerDown
}

func (m *mockServerAdapter) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	if m.updateProjectFn != nil {
		return m.updateProjectFn(ctx, project)
	}
	return models.Project{}, errServerDown
}

func (m *mockServerAdapter) SetProjectStatus(ctx context.Context, projectID int64, status models.ProjectStatus) (models.Project, error) {
	if m.setStatusFn != nil {
		return m.setStatusFn(ctx, projectID, status)
	}
	return models.Project{}, errServerDown
}

func (m *mockServerAdapter) DeleteProject(ctx context.Context, projectID int64) error {
	if m.deleteProjectFn != nil {
		return m.deleteProjectFn(ctx, projectID)
	}
	return errServerDown
}

func (m *mockServerAdapter) AddMaterial(ctx context.Context, material models.ProjectMaterial) (models.ProjectMaterial, error) {
	if m.addMaterialFn != nil {
		return m.addMaterialFn(ctx, material)
	}
	return models.ProjectMaterial{}, errServerDown
}

func (m *mockServerAdapter) DeleteMaterial(ctx context.Context, projectID, materialID int64) error {
	if m.deleteMaterialFn != nil {
		return m.deleteMaterialFn(ctx, projectID, materialID)
	}
	return errServerDown
}

func (m *mockServerAdapter) ShoppingList(ctx context.Context) ([]models.ShoppingItem, error) {
	if m.shoppingListFn != nil {
		return m.shoppingListFn(ctx)
	}
	return nil, errServerDown
}

func (m *mockServerAdapter) Lookup(ctx context.Context, barcode string) (models.CatalogProduct, error) {
	if m.lookupFn != nil {
		return m.lookupFn(ctx, barcode)
	}
	return models.CatalogProduct{}, errServerDown
}

func (m *mockServerAdapter) Convert(ctx context.Context, value float64, from, to string) (models.Conversion, error) {
	if m.convertFn != nil {
		return m.convertFn(ctx, value, from, to)
	}
	return models.Conversion{}, errServerDown
}
