package service

import (
	"context"
	"testing"

	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/internal/store"
	"github.com/avoronova/craft-stash/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCreate_DefaultsToPlanned(t *testing.T) {
	var persisted models.Project
	repo := &mockProjectRepository{
		createFn: func(ctx context.Context, project models.Project) (models.Project, error) {
			persisted = project
			project.ID = 3
			return project, nil
		},
	}

	svc := NewProjectService(repo, logger.Nop())
	created, err := svc.Create(context.Background(), models.Project{UserID: 5, Name: "Winter sweater"})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPlanned, persisted.Status)
	assert.Equal(t, int64(3), created.ID)
}

func TestProjectCreate_Validation(t *testing.T) {
	svc := NewProjectService(&mockProjectRepository{}, logger.Nop())
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Project{UserID: 5})
	assert.ErrorIs(t, err, ErrValidationNameRequired)

	_, err = svc.Create(ctx, models.Project{UserID: 5, Name: "Hat", Status: "paused"})
	assert.ErrorIs(t, err, ErrValidationUnknownStatus)

	_, err = svc.Create(ctx, models.Project{
		UserID: 5, Name: "Hat",
		Materials: []models.ProjectMaterial{{Name: "Yarn", Quantity: 0, Unit: "skein"}},
	})
	assert.ErrorIs(t, err, ErrValidationQuantityNotAbove)
}

func TestProjectSetStatus(t *testing.T) {
	var gotStatus models.ProjectStatus
	repo := &mockProjectRepository{
		updateStatusFn: func(ctx context.Context, userID, projectID int64, status models.ProjectStatus) error {
			gotStatus = status
			return nil
		},
		getFn: func(ctx context.Context, userID, projectID int64) (models.Project, error) {
			return models.Project{ID: projectID, UserID: userID, Name: "Hat", Status: gotStatus}, nil
		},
	}

	svc := NewProjectService(repo, logger.Nop())
	project, err := svc.SetStatus(context.Background(), 5, 3, models.StatusFinished)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFinished, project.Status)

	_, err = svc.SetStatus(context.Background(), 5, 3, "paused")
	assert.ErrorIs(t, err, ErrValidationUnknownStatus)
}

func TestProjectSetStatus_NotFound(t *testing.T) {
	repo := &mockProjectRepository{
		updateStatusFn: func(ctx context.Context, userID, projectID int64, status models.ProjectStatus) error {
			return store.ErrProjectNotFound
		},
	}

	svc := NewProjectService(repo, logger.Nop())
	_, err := svc.SetStatus(context.Background(), 5, 99, models.StatusActive)
	assert.ErrorIs(t, err, store.ErrProjectNotFound)
}

func TestProjectAddMaterial_Validation(t *testing.T) {
	svc := NewProjectService(&mockProjectRepository{}, logger.Nop())
	ctx := context.Background()

	_, err := svc.AddMaterial(ctx, 5, models.ProjectMaterial{ProjectID: 3, Quantity: 1, Unit: "skein"})
	assert.ErrorIs(t, err, ErrValidationNameRequired)

	_, err = svc.AddMaterial(ctx, 5, models.ProjectMaterial{ProjectID: 3, Name: "Yarn", Quantity: 1})
	assert.ErrorIs(t, err, ErrValidationUnitRequired)

	_, err = svc.AddMaterial(ctx, 5, models.ProjectMaterial{ProjectID: 3, Name: "Yarn", Quantity: 1, Unit: "banana"})
	assert.ErrorIs(t, err, ErrValidationUnknownUnit)

	added, err := svc.AddMaterial(ctx, 5, models.ProjectMaterial{ProjectID: 3, Name: "Yarn", Quantity: 2, Unit: "skein"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), added.ID)
}

func TestProjectList_EmptyIsNotNil(t *testing.T) {
	svc := NewProjectService(&mockProjectRepository{}, logger.Nop())

	projects, err := svc.List(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}
