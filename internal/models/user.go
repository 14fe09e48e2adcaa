package models

import (
	"time"
)

// User represents a user profile.
type User struct {
	UserID string `json:"userID"`
	Name   string `json:"name"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
}
