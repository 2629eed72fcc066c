package usecase

import (
	authdomain "calendar-backend/internal/auth/domain"
	"calendar-backend/internal/calendar/domain"
)

// CalendarUsecase defines operations on calendar databases and schedules.
// Every operation that takes a user stamps or filters ownership server-side;
// client-supplied owner values are never trusted.
type CalendarUsecase interface {
	CreateDatabase(user *authdomain.User, name string) (*domain.CalendarDatabase, error)
	ListDatabases(user *authdomain.User) ([]*domain.CalendarDatabase, error)

	CreateSchedule(user *authdomain.User, schedule *domain.Schedule) (*domain.Schedule, error)
	ListSchedules(user *authdomain.User) ([]*domain.Schedule, error)

	// DeleteSchedule deletes by id without an ownership check. The upstream
	// API exposes this without authentication; see DESIGN.md.
	DeleteSchedule(id string) error
}
