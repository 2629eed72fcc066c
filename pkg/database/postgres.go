package database

import (
	"calendar-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresConnection opens the shared GORM handle. GORM pools the
// underlying connections; each request borrows one for its queries and it
// is returned when the query finishes, on success or failure alike.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
}
