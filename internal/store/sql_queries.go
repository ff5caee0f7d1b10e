package store

import "strings"

const (
	createUser = `INSERT INTO users (login, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, name, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, name, password_hash, created_at
    FROM users
    WHERE login = $1;`

	createSupply = `INSERT INTO supplies (user_id, name, category, quantity, unit, color, brand, barcode, tags, notes, min_quantity)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    RETURNING id, created_at, updated_at;`

	getSupply = `SELECT id, user_id, name, category, quantity, unit, color, brand, barcode, tags, notes, min_quantity, created_at, updated_at
    FROM supplies
    WHERE user_id = $1 AND id = $2;`

	getAllSupplies = `SELECT id, user_id, name, category, quantity, unit, color, brand, barcode, tags, notes, min_quantity, created_at, updated_at
    FROM supplies
    WHERE user_id = $1
    ORDER BY LOWER(name);`

	updateSupply = `UPDATE supplies
    SET name = $3, category = $4, quantity = $5, unit = $6, color = $7, brand = $8, barcode = $9, tags = $10, notes = $11, min_quantity = $12, updated_at = NOW()
    WHERE user_id = $1 AND id = $2
    RETURNING created_at, updated_at;`

	deleteSupply = `DELETE FROM supplies
    WHERE user_id = $1 AND id = $2;`

	createProject = `INSERT INTO projects (user_id, name, status, pattern_name, pattern_url, notes)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, created_at, updated_at;`

	getProject = `SELECT id, user_id, name, status, pattern_name, pattern_url, notes, created_at, updated_at
    FROM projects
    WHERE user_id = $1 AND id = $2;`

	getAllProjects = `SELECT id, user_id, name, status, pattern_name, pattern_url, notes, created_at, updated_at
    FROM projects
    WHERE user_id = $1
    ORDER BY created_at DESC, id DESC;`

	updateProject = `UPDATE projects
    SET name = $3, status = $4, pattern_name = $5, pattern_url = $6, notes = $7, updated_at = NOW()
    WHERE user_id = $1 AND id = $2
    RETURNING created_at, updated_at;`

	updateProjectStatus = `UPDATE projects
    SET status = $3, updated_at = NOW()
    WHERE user_id = $1 AND id = $2;`

	deleteProject = `DELETE FROM projects
    WHERE user_id = $1 AND id = $2;`

	createMaterial = `INSERT INTO project_materials (project_id, supply_id, name, quantity, unit)
    SELECT p.id, $3, $4, $5, $6
    FROM projects p
    WHERE p.user_id = $1 AND p.id = $2
    RETURNING id;`

	getProjectMaterials = `SELECT id, project_id, supply_id, name, quantity, unit
    FROM project_materials
    WHERE project_id = $1
    ORDER BY id;`

	deleteMaterial = `DELETE FROM project_materials pm
    USING projects p
    WHERE pm.project_id = p.id AND p.user_id = $1 AND pm.project_id = $2 AND pm.id = $3;`

	getMaterialsForUser = `SELECT pm.id, pm.project_id, pm.supply_id, pm.name, pm.quantity, pm.unit, p.name
    FROM project_materials pm
    JOIN projects p ON p.id = pm.project_id
    WHERE p.user_id = $1 AND p.status <> 'finished'
    ORDER BY pm.id;`

	findProductByBarcode = `SELECT barcode, name, brand, category, unit, default_quantity, color
    FROM catalog_products
    WHERE barcode = $1;`
)

// joinTags flattens a tag list into the comma-separated form stored in the
// tags column.
func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

// splitTags expands the stored comma-separated tags column back into a
// slice, dropping empty entries.
func splitTags(tags string) []string {
	if tags == "" {
		return nil
	}

	parts := strings.Split(tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
