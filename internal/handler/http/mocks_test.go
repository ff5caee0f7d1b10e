package http

import (
	"context"
	"errors"

	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/internal/service"
	"github.com/avoronova/craft-stash/models"
)

// errBoom is a generic unexpected failure used to drive 500 paths.
var errBoom = errors.New("boom")

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	// Default: accept any token as user 1 so routed tests can focus on the
	// handler under test rather than on authentication.
	return models.Token{UserID: 1}, nil
}

type mockSupplyService struct {
	listFn   func(ctx context.Context, userID int64, query models.SupplyQuery) (models.SupplyList, error)
	createFn func(ctx context.Context, supply models.Supply) (models.Supply, error)
	getFn    func(ctx context.Context, userID, supplyID int64) (models.Supply, error)
	updateFn func(ctx context.Context, supply models.Supply) (models.Supply, error)
	deleteFn func(ctx context.Context, userID, supplyID int64) error
}

func (m *mockSupplyService) List(ctx context.Context, userID int64, query models.SupplyQuery) (models.SupplyList, error) {
	return m.listFn(ctx, userID, query)
}

func (m *mockSupplyService) Create(ctx context.Context, supply models.Supply) (models.Supply, error) {
	return m.createFn(ctx, supply)
}

func (m *mockSupplyService) Get(ctx context.Context, userID, supplyID int64) (models.Supply, error) {
	return m.getFn(ctx, userID, supplyID)
}

func (m *mockSupplyService) Update(ctx context.Context, supply models.Supply) (models.Supply, error) {
	return m.updateFn(ctx, supply)
}

func (m *mockSupplyService) Delete(ctx context.Context, userID, supplyID int64) error {
	return m.deleteFn(ctx, userID, supplyID)
}

type mockProjectService struct {
	listFn           func(ctx context.Context, userID int64) ([]models.Project, error)
	createFn         func(ctx context.Context, project models.Project) (models.Project, error)
	getFn            func(ctx context.Context, userID, projectID int64) (models.Project, error)
	updateFn         func(ctx context.Context, project models.Project) (models.Project, error)
	setStatusFn      func(ctx context.Context, userID, projectID int64, status models.ProjectStatus) (models.Project, error)
	deleteFn         func(ctx context.Context, userID, projectID int64) error
	addMaterialFn    func(ctx context.Context, userID int64, material models.ProjectMaterial) (models.ProjectMaterial, error)
	deleteMaterialFn func(ctx context.Context, userID, projectID, materialID int64) error
}

func (m *mockProjectService) List(ctx context.Context, userID int64) ([]models.Project, error) {
	return m.listFn(ctx, userID)
}

func (m *mockProjectService) Create(ctx context.Context, project models.Project) (models.Project, error) {
	return m.createFn(ctx, project)
}

func (m *mockProjectService) Get(ctx context.Context, userID, projectID int64) (models.Project, error) {
	return m.getFn(ctx, userID, projectID)
}

func (m *mockProjectService) Update(ctx context.Context, project models.Project) (models.Project, error) {
	return m.updateFn(ctx, project)
}

func (m *mockProjectService) SetStatus(ctx context.Context, userID, projectID int64, status models.ProjectStatus) (models.Project, error) {
	return m.setStatusFn(ctx, userID, projectID, status)
}

func (m *mockProjectService) Delete(ctx context.Context, userID, projectID int64) error {
	return m.deleteFn(ctx, userID, projectID)
}

func (m *mockProjectService) AddMaterial(ctx context.Context, userID int64, material models.ProjectMaterial) (models.ProjectMaterial, error) {
	return m.addMaterialFn(ctx, userID, material)
}

func (m *mockProjectService) DeleteMaterial(ctx context.Context, userID, projectID, materialID int64) error {
	return m.deleteMaterialFn(ctx, userID, projectID, materialID)
}

type mockShoppingService struct {
	shoppingListFn func(ctx context.Context, userID int64) ([]models.ShoppingItem, error)
}

func (m *mockShoppingService) ShoppingList(ctx context.Context, userID int64) ([]models.ShoppingItem, error) {
	return m.shoppingListFn(ctx, userID)
}

type mockLookupService struct {
	lookupFn func(ctx context.Context, barcode string) (models.CatalogProduct, error)
}

func (m *mockLookupService) Lookup(ctx context.Context, barcode string) (models.CatalogProduct, error) {
	return m.lookupFn(ctx, barcode)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler whose services default to permissive mocks.
// Tests override the fields they care about before wiring requests.
func newTestHandler(services *service.Services) *Handler {
	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(services, logger.Nop())
}
