package main

import (
	"log"

	api "calendar-backend/cmd/api"
	authdomain "calendar-backend/internal/auth/domain"
	authRepo "calendar-backend/internal/auth/repository"
	authUsecase "calendar-backend/internal/auth/usecase"
	calendardomain "calendar-backend/internal/calendar/domain"
	calendarRepo "calendar-backend/internal/calendar/repository"
	calendarUsecase "calendar-backend/internal/calendar/usecase"
	"calendar-backend/pkg/config"
	"calendar-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &calendardomain.CalendarDatabase{}, &calendardomain.Schedule{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	databaseRepo := calendarRepo.NewGormDatabaseRepository(db)
	scheduleRepo := calendarRepo.NewGormScheduleRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg)
	calendarUsecaseInstance := calendarUsecase.NewCalendarUsecase(databaseRepo, scheduleRepo)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, calendarUsecaseInstance, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
