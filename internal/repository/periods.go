package repository

import (
	"context"
	"time"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
)

func (r *Repository) GetAllPeriodDefinitions() ([]domain.PeriodDefinition, error) {
	query := `
		SELECT period, duration, start_time, end_time
		FROM period_definitions
		ORDER BY period
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	defs := make([]domain.PeriodDefinition, 0)
	for rows.Next() {
		var def domain.PeriodDefinition
		if err := rows.Scan(&def.Period, &def.Duration, &def.StartTime, &def.EndTime); err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return defs, nil
}

// ReplacePeriodDefinitions swaps the whole catalog in one transaction.
// Readers never observe a partially replaced set.
func (r *Repository) ReplacePeriodDefinitions(defs []domain.PeriodDefinition) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM period_definitions`); err != nil {
		return err
	}

	query := `
		INSERT INTO period_definitions (period, duration, start_time, end_time)
		VALUES ($1, $2, $3, $4)
	`
	for _, def := range defs {
		if _, err := tx.ExecContext(ctx, query, def.Period, def.Duration, def.StartTime, def.EndTime); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
