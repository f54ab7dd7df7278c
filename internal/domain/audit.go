package domain

import (
	"encoding/json"
	"time"
)

type AuditAction string

const (
	ActionHoursAddedByLibrarian   AuditAction = "HOURS_ADDED_BY_LIBRARIAN"
	ActionHoursEditedByLibrarian  AuditAction = "HOURS_EDITED_BY_LIBRARIAN"
	ActionHoursDeletedByLibrarian AuditAction = "HOURS_DELETED_BY_LIBRARIAN"
	ActionUserCreated             AuditAction = "USER_CREATED"
)

// AuditEvent is the fire-and-forget message published on every librarian
// override. The worker persists it; a lost event never fails the operation
// that produced it.
type AuditEvent struct {
	ActorID      int64           `json:"actorId"`
	TargetUserID *int64          `json:"targetUserId,omitempty"`
	Action       AuditAction     `json:"action"`
	Details      json.RawMessage `json:"details"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// AuditLog is the persisted form, as listed back to librarians.
type AuditLog struct {
	ID           int64           `json:"id"`
	ActorID      int64           `json:"actorId"`
	TargetUserID *int64          `json:"targetUserId,omitempty"`
	Action       AuditAction     `json:"action"`
	Details      json.RawMessage `json:"details"`
	CreatedAt    time.Time       `json:"createdAt"`
}
