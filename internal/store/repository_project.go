package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/models"
)

// projectRepository is the PostgreSQL-backed implementation of
// [ProjectRepository].
type projectRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProjectRepository constructs a [ProjectRepository] backed by the
// provided database connection and logger.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{db: db, logger: logger}
}

// ListProjects returns all projects of the user, newest first. Materials
// are not populated.
func (r *projectRepository) ListProjects(ctx context.Context, userID int64) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllProjects, userID)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Int64("user_id", userID).Msg("failed to query projects")
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err = scanProject(rows, &p); err != nil {
			log.Err(err).Str("func", "*projectRepository.ListProjects").Int64("user_id", userID).Msg("failed to scan project row")
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("project rows iteration error: %w", err)
	}

	return projects, nil
}

// CreateProject inserts a project and returns it with server-assigned
// fields populated. Materials passed in are inserted alongside.
func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProject,
		project.UserID,
		project.Name,
		project.Status,
		project.PatternName,
		project.PatternURL,
		project.Notes,
	)

	if err := row.Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateProject").Int64("user_id", project.UserID).Msg("failed to insert project")
		return models.Project{}, fmt.Errorf("failed to insert project: %w", err)
	}

	for i, material := range project.Materials {
		material.ProjectID = project.ID
		inserted, err := r.AddMaterial(ctx, project.UserID, material)
		if err != nil {
			return models.Project{}, err
		}
		project.Materials[i] = inserted
	}

	return project, nil
}

// GetProject returns one project with its materials populated.
func (r *projectRepository) GetProject(ctx context.Context, userID, projectID int64) (models.Project, error) {
	log := logger.FromContext(ctx)

	var project models.Project
	row := r.db.QueryRowContext(ctx, getProject, userID, projectID)
	if err := scanProject(row, &project); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrProjectNotFound
		}

		log.Err(err).Str("func", "*projectRepository.GetProject").Int64("user_id", userID).Int64("id", projectID).Msg("failed to get project")
		return models.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	materials, err := r.projectMaterials(ctx, project.ID)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.GetProject").Int64("user_id", userID).Int64("id", projectID).Msg("failed to load project materials")
		return models.Project{}, err
	}
	project.Materials = materials

	return project, nil
}

// UpdateProject overwrites the project's editable fields and bumps
// updated_at. Materials are managed separately via AddMaterial and
// DeleteMaterial.
func (r *projectRepository) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateProject,
		project.UserID,
		project.ID,
		project.Name,
		project.Status,
		project.PatternName,
		project.PatternURL,
		project.Notes,
	)

	if err := row.Scan(&project.CreatedAt, &project.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrProjectNotFound
		}

		log.Err(err).Str("func", "*projectRepository.UpdateProject").Int64("user_id", project.UserID).Int64("id", project.ID).Msg("failed to update project")
		return models.Project{}, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// UpdateProjectStatus changes only the project's status.
func (r *projectRepository) UpdateProjectStatus(ctx context.Context, userID, projectID int64, status models.ProjectStatus) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateProjectStatus, userID, projectID, status)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.UpdateProjectStatus").Int64("user_id", userID).Int64("id", projectID).Msg("failed to update project status")
		return fmt.Errorf("failed to update project status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

// DeleteProject removes a project. Its materials go with it via the
// ON DELETE CASCADE on project_materials.
func (r *projectRepository) DeleteProject(ctx context.Context, userID, projectID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteProject, userID, projectID)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteProject").Int64("user_id", userID).Int64("id", projectID).Msg("failed to delete project")
		return fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

// AddMaterial inserts a material requirement. The insert is guarded by the
// project's ownership, so a material can never be attached to another
// user's project.
func (r *projectRepository) AddMaterial(ctx context.Context, userID int64, material models.ProjectMaterial) (models.ProjectMaterial, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createMaterial,
		userID,
		material.ProjectID,
		material.SupplyID,
		material.Name,
		material.Quantity,
		material.Unit,
	)

	if err := row.Scan(&material.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ProjectMaterial{}, ErrProjectNotFound
		}

		log.Err(err).Str("func", "*projectRepository.AddMaterial").Int64("user_id", userID).Int64("project_id", material.ProjectID).Msg("failed to insert material")
		return models.ProjectMaterial{}, fmt.Errorf("failed to insert material: %w", err)
	}

	return material, nil
}

// DeleteMaterial removes one material requirement scoped to the project's
// owner.
func (r *projectRepository) DeleteMaterial(ctx context.Context, userID, projectID, materialID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteMaterial, userID, projectID, materialID)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteMaterial").Int64("user_id", userID).Int64("project_id", projectID).Msg("failed to delete material")
		return fmt.Errorf("failed to delete material: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrMaterialNotFound
	}

	return nil
}

// MaterialsForUser returns all materials of the user's non-finished
// projects joined with their project names.
func (r *projectRepository) MaterialsForUser(ctx context.Context, userID int64) ([]ProjectMaterialRow, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getMaterialsForUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.MaterialsForUser").Int64("user_id", userID).Msg("failed to query materials")
		return nil, fmt.Errorf("failed to query materials: %w", err)
	}
	defer rows.Close()

	var materials []ProjectMaterialRow
	for rows.Next() {
		var row ProjectMaterialRow
		err = rows.Scan(
			&row.Material.ID,
			&row.Material.ProjectID,
			&row.Material.SupplyID,
			&row.Material.Name,
			&row.Material.Quantity,
			&row.Material.Unit,
			&row.ProjectName,
		)
		if err != nil {
			log.Err(err).Str("func", "*projectRepository.MaterialsForUser").Int64("user_id", userID).Msg("failed to scan material row")
			return nil, fmt.Errorf("failed to scan material row: %w", err)
		}
		materials = append(materials, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("material rows iteration error: %w", err)
	}

	return materials, nil
}

func (r *projectRepository) projectMaterials(ctx context.Context, projectID int64) ([]models.ProjectMaterial, error) {
	rows, err := r.db.QueryContext(ctx, getProjectMaterials, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query project materials: %w", err)
	}
	defer rows.Close()

	var materials []models.ProjectMaterial
	for rows.Next() {
		var m models.ProjectMaterial
		if err = rows.Scan(&m.ID, &m.ProjectID, &m.SupplyID, &m.Name, &m.Quantity, &m.Unit); err != nil {
			return nil, fmt.Errorf("failed to scan material row: %w", err)
		}
		materials = append(materials, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("material rows iteration error: %w", err)
	}

	return materials, nil
}

func scanProject(row rowScanner, p *models.Project) error {
	return row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Status,
		&p.PatternName,
		&p.PatternURL,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}
