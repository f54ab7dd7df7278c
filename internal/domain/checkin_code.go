package domain

import (
	"time"
)

// CheckinCode is the shared secret monitors enter to self-report hours.
// At most one non-expired code exists at a time: issuing a new code expires
// every valid one in the same transaction.
type CheckinCode struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
