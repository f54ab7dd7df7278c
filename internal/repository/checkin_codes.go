package repository

import (
	"context"
	"time"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
)

// IssueCheckinCode expires every currently valid code and inserts the new
// one inside a single transaction, so at no point are two codes valid.
func (r *Repository) IssueCheckinCode(code *domain.CheckinCode) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `UPDATE checkin_codes SET expires_at = now() WHERE expires_at > now()`); err != nil {
		return err
	}

	query := `
		INSERT INTO checkin_codes (code, expires_at)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	if err := tx.QueryRowContext(ctx, query, code.Code, code.ExpiresAt).Scan(&code.ID, &code.CreatedAt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// GetCurrentCheckinCode returns the most recently created non-expired code.
// sql.ErrNoRows means none is valid.
func (r *Repository) GetCurrentCheckinCode() (*domain.CheckinCode, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, code, created_at, expires_at
		FROM checkin_codes
		WHERE expires_at > now()
		ORDER BY created_at DESC
		LIMIT 1
	`

	code := &domain.CheckinCode{}
	dst := []any{&code.ID, &code.Code, &code.CreatedAt, &code.ExpiresAt}
	if err := r.dbpool.QueryRowContext(ctx, query).Scan(dst...); err != nil {
		return nil, err
	}

	return code, nil
}

// ValidateCheckinCode reports whether a non-expired code with this value
// exists. Codes are multi-use until they expire or are superseded.
func (r *Repository) ValidateCheckinCode(code string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	valid := false
	query := `
		SELECT EXISTS (SELECT 1 FROM checkin_codes WHERE code = $1 AND expires_at > now())
	`
	if err := r.dbpool.QueryRowContext(ctx, query, code).Scan(&valid); err != nil {
		return false, err
	}

	return valid, nil
}

// DeleteExpiredCheckinCodes clears stale rows; used by the seeder and kept
// callable for a cleanup cron.
func (r *Repository) DeleteExpiredCheckinCodes() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, `DELETE FROM checkin_codes WHERE expires_at <= now()`)
	return err
}
