package service

import (
	"context"

	"github.com/avoronova/craft-stash/internal/store"
	"github.com/avoronova/craft-stash/models"
)

// Function-field mocks for the store interfaces. Unset fields fall back to
// zero-value returns.

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByLoginFn func(ctx context.Context, user models.User) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByLogin(ctx context.Context, user models.User) (models.User, error) {
	if m.findUserByLoginFn != nil {
		return m.findUserByLoginFn(ctx, user)
	}
	return models.User{}, store.ErrNoUserWasFound
}

type mockSupplyRepository struct {
	listFn    func(ctx context.Context, userID int64, query models.SupplyQuery) ([]models.Supply, int, error)
	allFn     func(ctx context.Context, userID int64) ([]models.Supply, error)
	createFn  func(ctx context.Context, supply models.Supply) (models.Supply, error)
	getFn     func(ctx context.Context, userID, supplyID int64) (models.Supply, error)
	updateFn  func(ctx context.Context, supply models.Supply) (models.Supply, error)
	deleteFn  func(ctx context.Context, userID, supplyID int64) error
}

func (m *mockSupplyRepository) ListSupplies(ctx context.Context, userID int64, query models.SupplyQuery) ([]models.Supply, int, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, query)
	}
	return nil, 0, nil
}

func (m *mockSupplyRepository) AllSupplies(ctx context.Context, userID int64) ([]models.Supply, error) {
	if m.allFn != nil {
		return m.allFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockSupplyRepository) CreateSupply(ctx context.Context, supply models.Supply) (models.Supply, error) {
	if m.createFn != nil {
		return m.createFn(ctx, supply)
	}
	supply.ID = 1
	return supply, nil
}

func (m *mockSupplyRepository) GetSupply(ctx context.Context, userID, supplyID int64) (models.Supply, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, supplyID)
	}
	return models.Supply{}, store.ErrSupplyNotFound
}

func (m *mockSupplyRepository) UpdateSupply(ctx context.Context, supply models.Supply) (models.Supply, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, supply)
	}
	return supply, nil
}

func (m *mockSupplyRepository) DeleteSupply(ctx context.Context, userID, supplyID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, supplyID)
	}
	return nil
}

type mockProjectRepository struct {
	listFn             func(ctx context.Context, userID int64) ([]models.Project, error)
	createFn           func(ctx context.Context, project models.Project) (models.Project, error)
	getFn              func(ctx context.Context, userID, projectID int64) (models.Project, error)
	updateFn           func(ctx context.Context, project models.Project) (models.Project, error)
	updateStatusFn     func(ctx context.Context, userID, projectID int64, status models.ProjectStatus) error
	deleteFn           func(ctx context.Context, userID, projectID int64) error
	addMaterialFn      func(ctx context.Context, userID int64, material models.ProjectMaterial) (models.ProjectMaterial, error)
	deleteMaterialFn   func(ctx context.Context, userID, projectID, materialID int64) error
	materialsForUserFn func(ctx context.Context, userID int64) ([]store.ProjectMaterialRow, error)
}

func (m *mockProjectRepository) ListProjects(ctx context.Context, userID int64) ([]models.Project, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockProjectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	if m.createFn != nil {
		return m.createFn(ctx, project)
	}
	project.ID = 1
	return project, nil
}

func (m *mockProjectRepository) GetProject(ctx context.Context, userID, projectID int64) (models.Project, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, projectID)
	}
	return models.Project{}, store.ErrProjectNotFound
}

func (m *mockProjectRepository) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, project)
	}
	return project, nil
}

func (m *mockProjectRepository) UpdateProjectStatus(ctx context.Context, userID, projectID int64, status models.ProjectStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, userID, projectID, status)
	}
	return nil
}

func (m *mockProjectRepository) DeleteProject(ctx context.Context, userID, projectID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, projectID)
	}
	return nil
}

func (m *mockProjectRepository) AddMaterial(ctx context.Context, userID int64, material models.ProjectMaterial) (models.ProjectMaterial, error) {
	if m.addMaterialFn != nil {
		return m.addMaterialFn(ctx, userID, material)
	}
	material.ID = 1
	return material, nil
}

func (m *mockProjectRepository) DeleteMaterial(ctx context.Context, userID, projectID, materialID int64) error {
	if m.deleteMaterialFn != nil {
		return m.deleteMaterialFn(ctx, userID, projectID, materialID)
	}
	return nil
}

func (m *mockProjectRepository) MaterialsForUser(ctx context.Context, userID int64) ([]store.ProjectMaterialRow, error) {
	if m.materialsForUserFn != nil {
		return m.materialsForUserFn(ctx, userID)
	}
	return nil, nil
}

type mockCatalogRepository struct {
	findByBarcodeFn func(ctx context.Context, barcode string) (models.CatalogProduct, error)
}

func (m *mockCatalogRepository) FindByBarcode(ctx context.Context, barcode string) (models.CatalogProduct, error) {
	if m.findByBarcodeFn != nil {
		return m.findByBarcodeFn(ctx, barcode)
	}
	return models.CatalogProduct{}, store.ErrProductNotFound
}
