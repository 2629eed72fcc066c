package api

import (
	"net/http"

	authdelivery "calendar-backend/internal/auth/delivery"
	authUsecase "calendar-backend/internal/auth/usecase"
	calendarDelivery "calendar-backend/internal/calendar/delivery"
	calendarUsecase "calendar-backend/internal/calendar/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, calendarUc calendarUsecase.CalendarUsecase) {
	authHandler := authdelivery.NewAuthHandler(authUc)
	calendarHandler := calendarDelivery.NewCalendarHandler(calendarUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.POST("/login", authHandler.Login)
		api.POST("/register", authHandler.Register)
		api.GET("/users/me/", authdelivery.AuthMiddleware(authUc), authHandler.Me)

		// Database routes (protected)
		database := api.Group("/database")
		database.Use(authdelivery.AuthMiddleware(authUc))
		{
			database.GET("", calendarHandler.GetDatabases)
			database.POST("/create", calendarHandler.CreateDatabase)
		}

		// Schedule routes. Delete is mounted outside the protected group,
		// matching the upstream API (see DESIGN.md).
		api.POST("/schedule/delete", calendarHandler.DeleteSchedule)

		schedule := api.Group("/schedule")
		schedule.Use(authdelivery.AuthMiddleware(authUc))
		{
			schedule.GET("", calendarHandler.GetSchedules)
			schedule.POST("/create", calendarHandler.CreateSchedule)
		}
	}
}
