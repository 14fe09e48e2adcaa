package domain

import "time"

// User represents the profile of a user of the application.
type User struct {
	UserID string `json:"userID"` // Primary Key (e.g., UUID)
	Name   string `json:"name"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// DisplayName returns the name shown on generated forms.
func (u User) DisplayName() string {
	if u.Name == "" {
		return "Unknown User"
	}
	return u.Name
}
