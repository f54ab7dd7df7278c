package handler

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
	"github.com/oakmont-ms/library-volunteers/backend/internal/utils"
)

const currentCodeKey = "current_checkin_code"

// IssueCheckinCode generates a new 6-digit code and supersedes every valid
// one. Expire-then-insert runs in one database transaction, so no window
// exists where two codes validate.
func (h *Handler) IssueCheckinCode(w http.ResponseWriter, r *http.Request) {
	validity := time.Duration(h.config.CheckinCode.Expiration) * time.Second

	code := &domain.CheckinCode{
		Code:      utils.GenerateCheckinCode(),
		ExpiresAt: time.Now().Add(validity),
	}

	if err := h.repository.IssueCheckinCode(code); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// replace the cache entry; the cache is an optimization, so a failure
	// here only costs a database read later
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	if err := h.redisClient.Set(ctx, currentCodeKey, code.Code, validity).Err(); err != nil {
		slog.Warn("failed to cache check-in code", "error", err)
	}

	h.successResponse(w, r, "check-in code issued", code)
}

// GetCheckinCode returns the newest non-expired code, redis fast path first.
func (h *Handler) GetCheckinCode(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	cached, err := h.redisClient.Get(ctx, currentCodeKey).Result()
	if err == nil {
		h.successResponse(w, r, "check-in code fetched", map[string]string{"code": cached})
		return
	}
	if !errors.Is(err, redis.Nil) {
		slog.Warn("check-in code cache read failed", "error", err)
	}

	code, err := h.repository.GetCurrentCheckinCode()
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "no valid check-in code")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if ttl := time.Until(code.ExpiresAt); ttl > 0 {
		if err := h.redisClient.Set(ctx, currentCodeKey, code.Code, ttl).Err(); err != nil {
			slog.Warn("failed to cache check-in code", "error", err)
		}
	}

	h.successResponse(w, r, "check-in code fetched", map[string]string{"code": code.Code})
}
