package service

import (
	"context"

	"github.com/avoronova/craft-stash/internal/adapter"
	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/models"
)

// clientProjectService implements ClientProjectService as a thin pass-through
// to the server adapter. Projects are not cached locally; the project screen
// requires connectivity.
type clientProjectService struct {
	serverAdapter adapter.ServerAdapter
	logger        *logger.Logger
}

// NewClientProjectService wires project operations to the server adapter.
func NewClientProjectService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientProjectService {
	return &clientProjectService{
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

func (s *clientProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.serverAdapter.ListProjects(ctx)
}

func (s *clientProjectService) Create(ctx context.Context, project models.Project) (models.Project, error) {
	return s.serverAdapter.CreateProject(ctx, project)
}

func (s *clientProjectService) Get(ctx context.Context, projectID int64) (models.Project, error) {
	return s.serverAdapter.GetProject(ctx, projectID)
}

func (s *clientProjectService) Update(ctx context.Context, project models.Project) (models.Project, error) {
	return s.serverAdapter.UpdateProject(ctx, project)
}

func (s *clientProjectService) SetStatus(ctx context.Context, projectID int64, status models.ProjectStatus) (models.Project, error) {
	return s.serverAdapter.SetProjectStatus(ctx, projectID, status)
}

func (s *clientProjectService) Delete(ctx context.Context, projectID int64) error {
	return s.serverAdapter.DeleteProject(ctx, projectID)
}

func (s *clientProjectService) AddMaterial(ctx context.Context, material models.ProjectMaterial) (models.ProjectMaterial, error) {
	return s.serverAdapter.AddMaterial(ctx, material)
}

func (s *clientProjectService) DeleteMaterial(ctx context.Context, projectID, materialID int64) error {
	return s.serverAdapter.DeleteMaterial(ctx, projectID, materialID)
}
