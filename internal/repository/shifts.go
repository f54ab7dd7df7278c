package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
)

const dateLayout = "2006-01-02"

func (r *Repository) GetShiftsForRange(startDate, endDate string) ([]*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			s.id,
			s.date,
			s.period,
			s.created_at,
			sa.monitor_id,
			u.full_name
		FROM shifts s
		LEFT JOIN shift_assignments sa ON s.id = sa.shift_id
		LEFT JOIN users u ON sa.monitor_id = u.id
		WHERE s.date >= $1 AND s.date < $2
		ORDER BY s.date, s.period
	`

	rows, err := r.dbpool.QueryContext(ctx, query, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shiftsMap := make(map[int64]*domain.Shift)
	order := make([]int64, 0)

	for rows.Next() {
		var row struct {
			ID        int64
			Date      time.Time
			Period    int32
			CreatedAt time.Time

			MonitorID sql.NullInt64
			FullName  sql.NullString
		}

		dst := []any{&row.ID, &row.Date, &row.Period, &row.CreatedAt, &row.MonitorID, &row.FullName}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		shift, exists := shiftsMap[row.ID]
		if !exists {
			shift = &domain.Shift{
				ID:        row.ID,
				Date:      row.Date.Format(dateLayout),
				Period:    row.Period,
				Monitors:  make([]domain.MonitorSummary, 0),
				CreatedAt: row.CreatedAt,
			}
			shiftsMap[row.ID] = shift
			order = append(order, row.ID)
		}

		// a shift row with no assignments should not exist, but a LEFT JOIN
		// still has to tolerate it
		if !row.MonitorID.Valid {
			continue
		}

		shift.Monitors = append(shift.Monitors, domain.MonitorSummary{
			ID:       row.MonitorID.Int64,
			FullName: row.FullName.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	shifts := make([]*domain.Shift, 0, len(order))
	for _, id := range order {
		shifts = append(shifts, shiftsMap[id])
	}

	return shifts, nil
}

func (r *Repository) GetShiftByID(id int64) (*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			s.date,
			s.period,
			s.created_at,
			sa.monitor_id,
			u.full_name
		FROM shifts s
		LEFT JOIN shift_assignments sa ON s.id = sa.shift_id
		LEFT JOIN users u ON sa.monitor_id = u.id
		WHERE s.id = $1
	`

	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shift := &domain.Shift{
		ID:       id,
		Monitors: make([]domain.MonitorSummary, 0),
	}
	found := false

	for rows.Next() {
		var row struct {
			Date      time.Time
			Period    int32
			CreatedAt time.Time

			MonitorID sql.NullInt64
			FullName  sql.NullString
		}

		dst := []any{&row.Date, &row.Period, &row.CreatedAt, &row.MonitorID, &row.FullName}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if !found {
			shift.Date = row.Date.Format(dateLayout)
			shift.Period = row.Period
			shift.CreatedAt = row.CreatedAt
			found = true
		}

		if !row.MonitorID.Valid {
			continue
		}

		shift.Monitors = append(shift.Monitors, domain.MonitorSummary{
			ID:       row.MonitorID.Int64,
			FullName: row.FullName.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !found {
		return nil, sql.ErrNoRows
	}

	return shift, nil
}

func (r *Repository) ShiftExists(date string, period int32) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	exists := false
	query := `
		SELECT EXISTS (SELECT 1 FROM shifts WHERE date = $1 AND period = $2)
	`
	if err := r.dbpool.QueryRowContext(ctx, query, date, period).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

// CreateShift inserts the shift row and its assignment set in one
// transaction. The (date, period) unique constraint is the real duplicate
// guard; callers translate its violation.
func (r *Repository) CreateShift(shift *domain.Shift, monitorIDs []int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO shifts (date, period)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	if err := tx.QueryRowContext(ctx, query, shift.Date, shift.Period).Scan(&shift.ID, &shift.CreatedAt); err != nil {
		return err
	}

	for _, monitorID := range monitorIDs {
		query = `
			INSERT INTO shift_assignments (shift_id, monitor_id)
			VALUES ($1, $2)
		`
		if _, err := tx.ExecContext(ctx, query, shift.ID, monitorID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// ReplaceShiftAssignments swaps the full assignment set for a shift.
// Assignment rows carry no independent state, so delete-then-insert is fine.
func (r *Repository) ReplaceShiftAssignments(shiftID int64, monitorIDs []int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM shift_assignments WHERE shift_id = $1`, shiftID); err != nil {
		return err
	}

	query := `
		INSERT INTO shift_assignments (shift_id, monitor_id)
		VALUES ($1, $2)
	`
	for _, monitorID := range monitorIDs {
		if _, err := tx.ExecContext(ctx, query, shiftID, monitorID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// DeleteShift removes the shift row; assignments go with it via cascade.
// An emptied shift is deleted rather than kept as an empty row.
func (r *Repository) DeleteShift(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM shifts WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
