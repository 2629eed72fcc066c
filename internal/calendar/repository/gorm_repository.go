package repository

import (
	"time"

	"calendar-backend/internal/calendar/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormDatabaseRepository implements DatabaseRepository using GORM
type gormDatabaseRepository struct {
	db *gorm.DB
}

// NewGormDatabaseRepository creates a new GORM-based DatabaseRepository
func NewGormDatabaseRepository(db *gorm.DB) DatabaseRepository {
	return &gormDatabaseRepository{db: db}
}

func (r *gormDatabaseRepository) Create(database *domain.CalendarDatabase) error {
	if database.ID == "" {
		database.ID = uuid.New().String()
	}
	database.CreatedAt = time.Now()
	database.UpdatedAt = time.Now()
	return r.db.Create(database).Error
}

func (r *gormDatabaseRepository) FindByOwner(ownerID string) ([]*domain.CalendarDatabase, error) {
	var databases []*domain.CalendarDatabase
	err := r.db.Where("owner = ?", ownerID).Order("created_at ASC").Find(&databases).Error
	return databases, err
}

// gormScheduleRepository implements ScheduleRepository using GORM
type gormScheduleRepository struct {
	db *gorm.DB
}

// NewGormScheduleRepository creates a new GORM-based ScheduleRepository
func NewGormScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &gormScheduleRepository{db: db}
}

func (r *gormScheduleRepository) Create(schedule *domain.Schedule) error {
	if schedule.ID == "" {
		schedule.ID = uuid.New().String()
	}
	schedule.CreatedAt = time.Now()
	schedule.UpdatedAt = time.Now()
	return r.db.Create(schedule).Error
}

func (r *gormScheduleRepository) FindByOwner(ownerID string) ([]*domain.Schedule, error) {
	var schedules []*domain.Schedule
	err := r.db.Where("owner = ?", ownerID).Order("start_time ASC").Find(&schedules).Error
	return schedules, err
}

func (r *gormScheduleRepository) Delete(id string) error {
	return r.db.Delete(&domain.Schedule{}, "id = ?", id).Error
}
