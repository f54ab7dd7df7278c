package domain

import (
	"time"
)

type Role string

const (
	RoleLibrarian Role = "librarian"
	RoleMonitor   Role = "monitor"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}

// MonitorSummary is the embedded form used inside shift and schedule
// responses. Only what the grid needs to render a name chip.
type MonitorSummary struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
}
