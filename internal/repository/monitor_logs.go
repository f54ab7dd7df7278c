package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
)

func (r *Repository) MonitorLogExists(monitorID int64, date string, period int32) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	exists := false
	query := `
		SELECT EXISTS (SELECT 1 FROM monitor_logs WHERE monitor_id = $1 AND date = $2 AND period = $3)
	`
	if err := r.dbpool.QueryRowContext(ctx, query, monitorID, date, period).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

// CreateMonitorLog inserts one ledger row. The (monitor_id, date, period)
// unique constraint is the real double-log guard; the handler translates its
// violation into the same error the pre-check produces.
func (r *Repository) CreateMonitorLog(log *domain.MonitorLog) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO monitor_logs (monitor_id, monitor_name, date, period, check_in, check_out, duration_minutes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	args := []any{log.MonitorID, log.MonitorName, log.Date, log.Period, log.CheckIn, log.CheckOut, log.DurationMinutes}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&log.ID, &log.CreatedAt, &log.UpdatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetMonitorLogByID(id int64) (*domain.MonitorLog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT monitor_id, monitor_name, date, period, check_in, check_out, duration_minutes, created_at, updated_at
		FROM monitor_logs WHERE id = $1
	`

	log := &domain.MonitorLog{
		ID: id,
	}
	var date time.Time

	dst := []any{&log.MonitorID, &log.MonitorName, &date, &log.Period, &log.CheckIn, &log.CheckOut, &log.DurationMinutes, &log.CreatedAt, &log.UpdatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	log.Date = date.Format(dateLayout)

	return log, nil
}

// GetMonitorLogs lists the ledger, optionally filtered by monitor and/or
// date. Zero monitorID and empty date mean no filter.
func (r *Repository) GetMonitorLogs(monitorID int64, date string) ([]*domain.MonitorLog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, monitor_id, monitor_name, date, period, check_in, check_out, duration_minutes, created_at, updated_at
		FROM monitor_logs
		WHERE ($1 = 0 OR monitor_id = $1)
		  AND ($2 = '' OR date = $2::date)
		ORDER BY date DESC, period
	`

	rows, err := r.dbpool.QueryContext(ctx, query, monitorID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]*domain.MonitorLog, 0)
	for rows.Next() {
		log := &domain.MonitorLog{}
		var d time.Time
		dst := []any{&log.ID, &log.MonitorID, &log.MonitorName, &d, &log.Period, &log.CheckIn, &log.CheckOut, &log.DurationMinutes, &log.CreatedAt, &log.UpdatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		log.Date = d.Format(dateLayout)
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *Repository) UpdateMonitorLog(log *domain.MonitorLog) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE monitor_logs
		SET
			date = $1,
			period = $2,
			check_in = $3,
			check_out = $4,
			duration_minutes = $5,
			updated_at = now()
		WHERE id = $6
		RETURNING updated_at
	`

	args := []any{log.Date, log.Period, log.CheckIn, log.CheckOut, log.DurationMinutes, log.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&log.UpdatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteMonitorLog(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	res, err := r.dbpool.ExecContext(ctx, `DELETE FROM monitor_logs WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
