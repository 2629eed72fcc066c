package usecase

import (
	"strings"

	authdomain "calendar-backend/internal/auth/domain"
	"calendar-backend/internal/calendar/domain"
	"calendar-backend/internal/calendar/repository"
)

// calendarUsecase implements CalendarUsecase interface
type calendarUsecase struct {
	databaseRepo repository.DatabaseRepository
	scheduleRepo repository.ScheduleRepository
}

// NewCalendarUsecase creates a new instance of calendarUsecase
func NewCalendarUsecase(databaseRepo repository.DatabaseRepository, scheduleRepo repository.ScheduleRepository) CalendarUsecase {
	return &calendarUsecase{
		databaseRepo: databaseRepo,
		scheduleRepo: scheduleRepo,
	}
}

func (u *calendarUsecase) CreateDatabase(user *authdomain.User, name string) (*domain.CalendarDatabase, error) {
	database := &domain.CalendarDatabase{
		// Spaces are not allowed in database names; normalized, not rejected.
		Name:  strings.ReplaceAll(name, " ", "_"),
		Owner: user.ID,
	}

	if err := u.databaseRepo.Create(database); err != nil {
		return nil, err
	}

	return database, nil
}

func (u *calendarUsecase) ListDatabases(user *authdomain.User) ([]*domain.CalendarDatabase, error) {
	return u.databaseRepo.FindByOwner(user.ID)
}

func (u *calendarUsecase) CreateSchedule(user *authdomain.User, schedule *domain.Schedule) (*domain.Schedule, error) {
	// Owner is stamped from the authenticated identity; any client-supplied
	// value is overwritten. A fresh id is assigned by the repository.
	schedule.ID = ""
	schedule.Owner = user.ID

	if err := u.scheduleRepo.Create(schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

func (u *calendarUsecase) ListSchedules(user *authdomain.User) ([]*domain.Schedule, error) {
	return u.scheduleRepo.FindByOwner(user.ID)
}

func (u *calendarUsecase) DeleteSchedule(id string) error {
	return u.scheduleRepo.Delete(id)
}
