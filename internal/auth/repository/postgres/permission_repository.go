package postgres

import (
	"context"
	"fmt"
)

type PermissionRepository struct {
	db PgxIface
}

func NewPermissionRepository(db PgxIface) *PermissionRepository {
	return &PermissionRepository{db: db}
}

// GetAccessibleModuleIDs returns the union of module ids any of the given
// roles can access.
func (r *PermissionRepository) GetAccessibleModuleIDs(ctx context.Context, roleIDs []string) ([]int, error) {
	if len(roleIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT module_id
		FROM module_access_controls
		WHERE role_id = ANY($1) AND can_access = TRUE
		ORDER BY module_id
	`, roleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get accessible modules: %w", err)
	}
	defer rows.Close()

	var moduleIDs []int

	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan module id: %w", err)
		}

		moduleIDs = append(moduleIDs, id)
	}

	return moduleIDs, rows.Err()
}
