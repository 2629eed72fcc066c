package domain

import (
	"time"

	authdomain "calendar-backend/internal/auth/domain"
)

// CalendarDatabase is a named namespace of schedules owned by one user.
type CalendarDatabase struct {
	ID        string    `json:"UUID" gorm:"primaryKey"`
	Name      string    `json:"DatabaseName" gorm:"not null"`
	Owner     string    `json:"Owner" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Authorize reports whether user may operate on a resource with the given
// stored owner id. Creation paths satisfy the same invariant by stamping
// owner from the authenticated user; list paths filter by owner instead.
func Authorize(user *authdomain.User, ownerID string) bool {
	if user == nil {
		return false
	}
	return user.ID == ownerID
}
