package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/roamstone/esim-portal/internal/infrastructure/db"
)

// reorderRows rewrites sort_order in a single transaction so a half-applied
// reorder never becomes visible to list queries.
func reorderRows(ctx context.Context, database *db.Database, table string, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := database.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reorder: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := fmt.Sprintf("UPDATE %s SET sort_order = $1, updated_at = NOW() WHERE id = $2", table)
	for i, id := range ids {
		if _, err := tx.ExecContext(ctx, query, i, id); err != nil {
			return fmt.Errorf("failed to reorder %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reorder: %w", err)
	}
	return nil
}
