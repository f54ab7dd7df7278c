package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
)

const (
	auditQueue = "audit_queue"
	mailQueue  = "email_queue"
)

// emitAudit publishes an audit event for a librarian override. Emission is
// fire-and-forget: a publish failure is logged and never fails the operation
// that produced the event.
func (h *Handler) emitAudit(actorID int64, targetUserID *int64, action domain.AuditAction, details any) {
	rawDetails, err := json.Marshal(details)
	if err != nil {
		slog.Error("failed to serialize audit event", "action", action, "error", err)
		return
	}

	event := domain.AuditEvent{
		ActorID:      actorID,
		TargetUserID: targetUserID,
		Action:       action,
		Details:      rawDetails,
		CreatedAt:    time.Now(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to serialize audit event", "action", action, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mqChannel.PublishWithContext(
		ctx,
		"",
		auditQueue,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		slog.Error("failed to publish audit event", "action", action, "error", err)
	}
}

// publishMail queues a notification mail. Unlike audit emission, callers
// decide whether a failure matters.
func (h *Handler) publishMail(msg domain.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mqChannel.PublishWithContext(
		ctx,
		"",
		mailQueue,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (h *Handler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	limit := 50
	offset := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	logs, err := h.repository.GetAuditLogs(limit, offset)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "audit logs fetched", logs)
}
