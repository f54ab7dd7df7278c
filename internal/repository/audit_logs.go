package repository

import (
	"context"
	"time"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
)

// CreateAuditLog persists one consumed audit event. Called by the worker,
// never by request handlers.
func (r *Repository) CreateAuditLog(event *domain.AuditEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO audit_logs (actor_id, target_user_id, action, details, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	args := []any{event.ActorID, event.TargetUserID, event.Action, []byte(event.Details), event.CreatedAt}
	if _, err := r.dbpool.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAuditLogs(limit, offset int) ([]*domain.AuditLog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, actor_id, target_user_id, action, details, created_at
		FROM audit_logs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.dbpool.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]*domain.AuditLog, 0)
	for rows.Next() {
		log := &domain.AuditLog{}
		var details []byte
		dst := []any{&log.ID, &log.ActorID, &log.TargetUserID, &log.Action, &details, &log.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		log.Details = details
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}
