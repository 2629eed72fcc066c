package domain

import "time"

// Schedule is a single calendar entry inside a database.
type Schedule struct {
	ID         string     `json:"UUID" gorm:"primaryKey"`
	DatabaseID string     `json:"DatabaseUUID" gorm:"index"`
	Owner      string     `json:"Owner" gorm:"index;not null"`
	Title      string     `json:"Title" gorm:"not null"`
	Memo       string     `json:"Memo,omitempty"`
	StartTime  *time.Time `json:"StartTime,omitempty"`
	EndTime    *time.Time `json:"EndTime,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
