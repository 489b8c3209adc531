package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/fitness-roadmap/internal/catalog"
	"github.com/jonathan/fitness-roadmap/internal/types"
)

// ListCatalog loads every workout with its exercises, ordered by ID.
func (db *DB) ListCatalog(ctx context.Context) (*types.Catalog, error) {
	tx, err := db.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && rErr != pgx.ErrTxClosed {
			_ = rErr
		}
	}()

	rows, err := tx.Query(ctx,
		`SELECT id, name, description, difficulty, experience_levels, goal_tags, muscle_groups, duration_minutes
		 FROM workouts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	var entries []types.CatalogEntry
	index := make(map[int]int)
	for rows.Next() {
		var e types.CatalogEntry
		var levels, goals []string
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Difficulty, &levels, &goals, &e.MuscleGroups, &e.DurationMinutes); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan workout: %w", err)
		}
		e.ExperienceLevels = levelsFromStrings(levels)
		e.GoalTags = goalsFromStrings(goals)
		index[e.ID] = len(entries)
		entries = append(entries, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	exRows, err := tx.Query(ctx,
		`SELECT workout_id, name, sets, reps, rest_seconds, is_warmup, ordinal
		 FROM workout_exercises ORDER BY workout_id, ordinal`)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer exRows.Close()

	for exRows.Next() {
		var workoutID int
		var ex types.CatalogExercise
		if err := exRows.Scan(&workoutID, &ex.Name, &ex.Sets, &ex.Reps, &ex.RestSeconds, &ex.IsWarmup, &ex.Order); err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		if i, ok := index[workoutID]; ok {
			entries[i].Exercises = append(entries[i].Exercises, ex)
		}
	}
	if err := exRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	c := &types.Catalog{Entries: entries}
	if err := catalog.Normalize(c); err != nil {
		return nil, fmt.Errorf("stored catalog is invalid: %w", err)
	}
	return c, nil
}

// UpsertCatalog writes every catalog entry, updating existing workouts and
// rebuilding their exercise lists. It runs in one transaction.
func (db *DB) UpsertCatalog(ctx context.Context, c *types.Catalog) (*SeedResult, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && rErr != pgx.ErrTxClosed {
			_ = rErr
		}
	}()

	result := &SeedResult{}
	for _, entry := range c.Entries {
		var inserted bool
		err := tx.QueryRow(ctx,
			`INSERT INTO workouts (id, name, description, difficulty, experience_levels, goal_tags, muscle_groups, duration_minutes)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (id) DO UPDATE SET
			     name = $2,
			     description = $3,
			     difficulty = $4,
			     experience_levels = $5,
			     goal_tags = $6,
			     muscle_groups = $7,
			     duration_minutes = $8,
			     updated_at = NOW()
			 RETURNING (xmax = 0)`,
			entry.ID, entry.Name, entry.Description, string(entry.Difficulty),
			levelsToStrings(entry.ExperienceLevels), goalsToStrings(entry.GoalTags), entry.MuscleGroups,
			entry.DurationMinutes,
		).Scan(&inserted)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert workout %d: %w", entry.ID, err)
		}
		if inserted {
			result.Created++
		} else {
			result.Updated++
		}

		if _, err := tx.Exec(ctx, `DELETE FROM workout_exercises WHERE workout_id = $1`, entry.ID); err != nil {
			return nil, fmt.Errorf("failed to clear exercises for workout %d: %w", entry.ID, err)
		}

		for i, ex := range entry.Exercises {
			ordinal := ex.Order
			if ordinal == 0 {
				ordinal = i + 1
			}
			_, err := tx.Exec(ctx,
				`INSERT INTO workout_exercises (workout_id, name, sets, reps, rest_seconds, is_warmup, ordinal)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				entry.ID, ex.Name, ex.Sets, ex.Reps, ex.RestSeconds, ex.IsWarmup, ordinal,
			)
			if err != nil {
				return nil, fmt.Errorf("failed to insert exercise %q for workout %d: %w", ex.Name, entry.ID, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit catalog: %w", err)
	}
	return result, nil
}
