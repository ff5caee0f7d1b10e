package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/internal/store"
	"github.com/avoronova/craft-stash/internal/units"
	"github.com/avoronova/craft-stash/models"
)

// projectService is the concrete implementation of ProjectService.
type projectService struct {
	projectRepository store.ProjectRepository
	logger            *logger.Logger
}

// NewProjectService constructs a ProjectService wired to the given
// repository.
func NewProjectService(projectRepository store.ProjectRepository, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		logger:            logger,
	}
}

func validateProject(project models.Project) error {
	if strings.TrimSpace(project.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNameRequired)
	}
	if !models.IsKnownStatus(project.Status) {
		return fmt.Errorf("%w: %w %q", ErrInvalidDataProvided, ErrValidationUnknownStatus, project.Status)
	}
	for _, material := range project.Materials {
		if err := validateMaterial(material); err != nil {
			return err
		}
	}
	return nil
}

func validateMaterial(material models.ProjectMaterial) error {
	if strings.TrimSpace(material.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNameRequired)
	}
	if material.Quantity <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationQuantityNotAbove)
	}
	if strings.TrimSpace(material.Unit) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationUnitRequired)
	}
	if !units.IsKnown(material.Unit) {
		return fmt.Errorf("%w: %w %q", ErrInvalidDataProvided, ErrValidationUnknownUnit, material.Unit)
	}
	return nil
}

// List returns all projects of the user, newest first.
func (s *projectService) List(ctx context.Context, userID int64) ([]models.Project, error) {
	projects, err := s.projectRepository.ListProjects(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("project listing failed: %w", err)
	}

	if projects == nil {
		projects = []models.Project{}
	}

	return projects, nil
}

// Create validates and persists a new project. A missing status defaults to
// planned.
func (s *projectService) Create(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	project.Name = strings.TrimSpace(project.Name)
	if project.Status == "" {
		project.Status = models.StatusPlanned
	}
	if err := validateProject(project); err != nil {
		log.Error().Err(err).Int64("user_id", project.UserID).Msg("project validation failed")
		return models.Project{}, err
	}

	created, err := s.projectRepository.CreateProject(ctx, project)
	if err != nil {
		log.Err(err).Int64("user_id", project.UserID).Msg("project creation failed")
		return models.Project{}, fmt.Errorf("project creation failed: %w", err)
	}

	return created, nil
}

// Get returns one project with its materials.
func (s *projectService) Get(ctx context.Context, userID, projectID int64) (models.Project, error) {
	project, err := s.projectRepository.GetProject(ctx, userID, projectID)
	if err != nil {
		return models.Project{}, fmt.Errorf("project lookup failed: %w", err)
	}

	return project, nil
}

// Update validates and overwrites a project's editable fields. Materials are
// managed through AddMaterial and DeleteMaterial and are left untouched.
func (s *projectService) Update(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	project.Name = strings.TrimSpace(project.Name)
	if project.Status == "" {
		project.Status = models.StatusPlanned
	}
	project.Materials = nil
	if err := validateProject(project); err != nil {
		log.Error().Err(err).Int64("user_id", project.UserID).Int64("id", project.ID).Msg("project validation failed")
		return models.Project{}, err
	}

	updated, err := s.projectRepository.UpdateProject(ctx, project)
	if err != nil {
		log.Err(err).Int64("user_id", project.UserID).Int64("id", project.ID).Msg("project update failed")
		return models.Project{}, fmt.Errorf("project update failed: %w", err)
	}

	return updated, nil
}

// SetStatus changes only the project's status and returns the refreshed
// project. Transitions are unrestricted.
func (s *projectService) SetStatus(ctx context.Context, userID, projectID int64, status models.ProjectStatus) (models.Project, error) {
	log := logger.FromContext(ctx)

	if !models.IsKnownStatus(status) {
		return models.Project{}, fmt.Errorf("%w: %w %q", ErrInvalidDataProvided, ErrValidationUnknownStatus, status)
	}

	if err := s.projectRepository.UpdateProjectStatus(ctx, userID, projectID, status); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("id", projectID).Msg("project status update failed")
		return models.Project{}, fmt.Errorf("project status update failed: %w", err)
	}

	return s.Get(ctx, userID, projectID)
}

// Delete removes a project and its materials.
func (s *projectService) Delete(ctx context.Context, userID, projectID int64) error {
	if err := s.projectRepository.DeleteProject(ctx, userID, projectID); err != nil {
		return fmt.Errorf("project deletion failed: %w", err)
	}

	return nil
}

// AddMaterial validates and attaches a material requirement to a project.
func (s *projectService) AddMaterial(ctx context.Context, userID int64, material models.ProjectMaterial) (models.ProjectMaterial, error) {
	log := logger.FromContext(ctx)

	material.Name = strings.TrimSpace(material.Name)
	if err := validateMaterial(material); err != nil {
		log.Error().Err(err).Int64("user_id", userID).Int64("project_id", material.ProjectID).Msg("material validation failed")
		return models.ProjectMaterial{}, err
	}

	added, err := s.projectRepository.AddMaterial(ctx, userID, material)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("project_id", material.ProjectID).Msg("material creation failed")
		return models.ProjectMaterial{}, fmt.Errorf("material creation failed: %w", err)
	}

	return added, nil
}

// DeleteMaterial removes one material requirement from a project.
func (s *projectService) DeleteMaterial(ctx context.Context, userID, projectID, materialID int64) error {
	if err := s.projectRepository.DeleteMaterial(ctx, userID, projectID, materialID); err != nil {
		return fmt.Errorf("material deletion failed: %w", err)
	}

	return nil
}
