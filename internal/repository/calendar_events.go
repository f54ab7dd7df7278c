package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
)

// monthEventLimit caps the month view; the range query is unbounded.
const monthEventLimit = 50

func (r *Repository) scanEvents(rows *sql.Rows) ([]*domain.CalendarEvent, error) {
	events := make([]*domain.CalendarEvent, 0)

	for rows.Next() {
		event := &domain.CalendarEvent{}
		var startDate, endDate time.Time
		var periodStart, periodEnd sql.NullInt32

		dst := []any{
			&event.ID,
			&event.Title,
			&event.TypeID,
			&startDate,
			&endDate,
			&event.AllDay,
			&periodStart,
			&periodEnd,
			&event.Description,
			&event.CreatedAt,
			&event.Type.ID,
			&event.Type.Name,
			&event.Type.Color,
			&event.Type.Icon,
			&event.Type.ClosesLibrary,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		event.StartDate = startDate.Format(dateLayout)
		event.EndDate = endDate.Format(dateLayout)
		if periodStart.Valid {
			v := periodStart.Int32
			event.PeriodStart = &v
		}
		if periodEnd.Valid {
			v := periodEnd.Int32
			event.PeriodEnd = &v
		}

		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

const eventSelect = `
	SELECT
		e.id,
		e.title,
		e.type_id,
		e.start_date,
		e.end_date,
		e.all_day,
		e.period_start,
		e.period_end,
		e.description,
		e.created_at,
		t.id,
		t.name,
		t.color,
		t.icon,
		t.closes_library
	FROM calendar_events e
	JOIN event_types t ON e.type_id = t.id
`

// GetEventsForRange returns events overlapping [startDate, endDate). The
// query range is half-open on its end, the event's own range is inclusive.
func (r *Repository) GetEventsForRange(startDate, endDate string, limited bool) ([]*domain.CalendarEvent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := eventSelect + `
		WHERE e.start_date < $2 AND e.end_date >= $1
		ORDER BY e.start_date, e.all_day DESC
	`
	args := []any{startDate, endDate}
	if limited {
		query += ` LIMIT $3`
		args = append(args, monthEventLimit)
	}

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanEvents(rows)
}

func (r *Repository) GetEventByID(id int64) (*domain.CalendarEvent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := eventSelect + `
		WHERE e.id = $1
	`

	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events, err := r.scanEvents(rows)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, sql.ErrNoRows
	}

	return events[0], nil
}

func (r *Repository) CreateEvent(event *domain.CalendarEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO calendar_events (title, type_id, start_date, end_date, all_day, period_start, period_end, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	args := []any{event.Title, event.TypeID, event.StartDate, event.EndDate, event.AllDay, event.PeriodStart, event.PeriodEnd, event.Description}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&event.ID, &event.CreatedAt); err != nil {
		return err
	}

	return nil
}

// UpdateEvent overwrites the row wholesale. No version check: concurrent
// edits are last-write-wins.
func (r *Repository) UpdateEvent(event *domain.CalendarEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE calendar_events
		SET
			title = $1,
			type_id = $2,
			start_date = $3,
			end_date = $4,
			all_day = $5,
			period_start = $6,
			period_end = $7,
			description = $8
		WHERE id = $9
		RETURNING created_at
	`

	args := []any{event.Title, event.TypeID, event.StartDate, event.EndDate, event.AllDay, event.PeriodStart, event.PeriodEnd, event.Description, event.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&event.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteEvent(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM calendar_events WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
