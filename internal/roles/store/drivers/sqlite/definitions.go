package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aussiebroadwan/clubhouse/internal/roles/domain"
)

type definitionsRepo struct {
	db dbtx
}

const listDefinitionsSQL = `
SELECT name, title, description, can_manage, is_owner
FROM role_definitions
ORDER BY position`

func (r *definitionsRepo) ListDefinitions(ctx context.Context) ([]domain.RoleDefinition, error) {
	rows, err := r.db.QueryContext(ctx, listDefinitionsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defs []domain.RoleDefinition
	for rows.Next() {
		var (
			def       domain.RoleDefinition
			canManage string
		)
		if err := rows.Scan(&def.Name, &def.Title, &def.Description, &canManage, &def.IsOwner); err != nil {
			return nil, err
		}
		if def.CanManage, err = decodeRoleNames(canManage); err != nil {
			return nil, fmt.Errorf("definition %q: %w", def.Name, err)
		}
		defs = append(defs, def)
	}
	return defs, rows.Err()
}

const createDefinitionSQL = `
INSERT INTO role_definitions (position, name, title, description, can_manage, is_owner)
VALUES (?, ?, ?, ?, ?, ?)`

func (r *definitionsRepo) CreateDefinition(ctx context.Context, position int, def domain.RoleDefinition) error {
	canManage, err := encodeRoleNames(def.CanManage)
	if err != nil {
		return fmt.Errorf("definition %q: %w", def.Name, err)
	}
	_, err = r.db.ExecContext(ctx, createDefinitionSQL,
		position, def.Name, def.Title, def.Description, canManage, def.IsOwner,
	)
	return err
}

func (r *definitionsRepo) DeleteAllDefinitions(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM role_definitions`)
	return err
}

func (r *definitionsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM role_definitions`)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

// can_manage is stored as a JSON array so role names survive the round trip
// unchanged, whatever characters they contain. An empty list is stored as the
// empty string and read back as nil.
func encodeRoleNames(names []string) (string, error) {
	if len(names) == 0 {
		return "", nil
	}
	b, err := json.Marshal(names)
	if err != nil {
		return "", fmt.Errorf("encode can_manage: %w", err)
	}
	return string(b), nil
}

func decodeRoleNames(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var names []string
	if err := json.Unmarshal([]byte(s), &names); err != nil {
		return nil, fmt.Errorf("decode can_manage: %w", err)
	}
	return names, nil
}
