package repository

import (
	"context"
	"time"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
)

// seedEventTypes is the catalog created lazily when the table is empty.
var seedEventTypes = []domain.EventType{
	{Name: "Closure", Color: "#c62828", Icon: "block", ClosesLibrary: true},
	{Name: "Holiday", Color: "#ef6c00", Icon: "beach_access", ClosesLibrary: true},
	{Name: "General Event", Color: "#2e7d32", Icon: "event", ClosesLibrary: false},
	{Name: "Maintenance", Color: "#6a1b9a", Icon: "build", ClosesLibrary: true},
}

// GetAllEventTypes returns the catalog, seeding the default set on first
// read if it is empty.
func (r *Repository) GetAllEventTypes() ([]*domain.EventType, error) {
	types, err := r.listEventTypes()
	if err != nil {
		return nil, err
	}
	if len(types) > 0 {
		return types, nil
	}

	if err := r.seedDefaultEventTypes(); err != nil {
		return nil, err
	}

	return r.listEventTypes()
}

func (r *Repository) listEventTypes() ([]*domain.EventType, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, name, color, icon, closes_library
		FROM event_types
		ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]*domain.EventType, 0)
	for rows.Next() {
		et := &domain.EventType{}
		if err := rows.Scan(&et.ID, &et.Name, &et.Color, &et.Icon, &et.ClosesLibrary); err != nil {
			return nil, err
		}
		types = append(types, et)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return types, nil
}

func (r *Repository) seedDefaultEventTypes() error {
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
		INSERT INTO event_types (name, color, icon, closes_library)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO NOTHING
	`
	for _, et := range seedEventTypes {
		if _, err := tx.ExecContext(ctx, query, et.Name, et.Color, et.Icon, et.ClosesLibrary); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetEventTypeByID(id int64) (*domain.EventType, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT name, color, icon, closes_library
		FROM event_types WHERE id = $1
	`

	et := &domain.EventType{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&et.Name, &et.Color, &et.Icon, &et.ClosesLibrary); err != nil {
		return nil, err
	}

	return et, nil
}

func (r *Repository) CreateEventType(et *domain.EventType) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO event_types (name, color, icon, closes_library)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	args := []any{et.Name, et.Color, et.Icon, et.ClosesLibrary}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&et.ID); err != nil {
		return err
	}

	return nil
}
