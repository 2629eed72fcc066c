package repository

import "calendar-backend/internal/calendar/domain"

// DatabaseRepository defines the interface for calendar database access
type DatabaseRepository interface {
	// Create creates a new calendar database
	Create(database *domain.CalendarDatabase) error

	// FindByOwner finds all databases owned by a user
	FindByOwner(ownerID string) ([]*domain.CalendarDatabase, error)
}

// ScheduleRepository defines the interface for schedule access
type ScheduleRepository interface {
	// Create creates a new schedule entry
	Create(schedule *domain.Schedule) error

	// FindByOwner finds all schedules owned by a user
	FindByOwner(ownerID string) ([]*domain.Schedule, error)

	// Delete deletes a schedule by ID
	Delete(id string) error
}
