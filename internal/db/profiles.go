package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/fitness-roadmap/internal/types"
)

// GetProfile retrieves a member profile by ID. Returns nil, nil when the member does not exist.
func (db *DB) GetProfile(ctx context.Context, memberID uuid.UUID) (*types.Profile, error) {
	var row memberRow
	err := db.pool.QueryRow(ctx,
		`SELECT `+memberColumns+` FROM members WHERE id = $1`,
		memberID,
	).Scan(row.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return row.toProfile(), nil
}

// ListMemberIDs returns every member ID in creation order.
func (db *DB) ListMemberIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := db.pool.Query(ctx, `SELECT id FROM members ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan member id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return ids, nil
}

// UpdateWeeklyStructureOverride stores the override in a single statement,
// guarded on the training frequency the override was validated against.
// Returns false when the member is missing or their frequency has changed.
func (db *DB) UpdateWeeklyStructureOverride(ctx context.Context, memberID uuid.UUID, structure types.WeeklyStructure, expectedDays int) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE members SET weekly_structure_override = $2, updated_at = NOW()
		 WHERE id = $1 AND training_days_per_week = $3`,
		memberID, structure.Strings(), expectedDays,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update weekly structure override: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ClearWeeklyStructureOverride removes the override. Returns false when the member is missing.
func (db *DB) ClearWeeklyStructureOverride(ctx context.Context, memberID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE members SET weekly_structure_override = NULL, updated_at = NOW() WHERE id = $1`,
		memberID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to clear weekly structure override: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// UpdatePersonalizationEnabled sets the personalization flag. Returns false when the member is missing.
func (db *DB) UpdatePersonalizationEnabled(ctx context.Context, memberID uuid.UUID, enabled bool) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE members SET personalization_enabled = $2, updated_at = NOW() WHERE id = $1`,
		memberID, enabled,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update personalization: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
