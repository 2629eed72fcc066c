package delivery

import (
	"net/http"
	"time"

	authdelivery "calendar-backend/internal/auth/delivery"
	"calendar-backend/internal/calendar/domain"
	"calendar-backend/internal/calendar/usecase"
	"calendar-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// CalendarHandler handles database and schedule HTTP requests
type CalendarHandler struct {
	calendarUsecase usecase.CalendarUsecase
}

// NewCalendarHandler creates a new CalendarHandler
func NewCalendarHandler(calendarUsecase usecase.CalendarUsecase) *CalendarHandler {
	return &CalendarHandler{
		calendarUsecase: calendarUsecase,
	}
}

// CreateDatabaseRequest represents the request body for creating a database.
// UUID and Owner are accepted for compatibility but ignored; both are
// assigned server-side.
type CreateDatabaseRequest struct {
	Name  string `json:"DatabaseName" binding:"required"`
	UUID  string `json:"UUID"`
	Owner string `json:"Owner"`
}

// CreateScheduleRequest represents the request body for creating a schedule
type CreateScheduleRequest struct {
	DatabaseID string     `json:"DatabaseUUID"`
	Title      string     `json:"Title" binding:"required"`
	Memo       string     `json:"Memo"`
	StartTime  *time.Time `json:"StartTime"`
	EndTime    *time.Time `json:"EndTime"`
	UUID       string     `json:"UUID"`
	Owner      string     `json:"Owner"`
}

// DeleteScheduleRequest represents the request body for deleting a schedule
type DeleteScheduleRequest struct {
	UUID string `json:"UUID" binding:"required"`
}

// CreateDatabase creates a calendar database owned by the caller
// POST /api/database/create
func (h *CalendarHandler) CreateDatabase(c *gin.Context) {
	user := authdelivery.CurrentUser(c)

	var req CreateDatabaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	database, err := h.calendarUsecase.CreateDatabase(user, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, database)
}

// GetDatabases lists the caller's databases
// GET /api/database
func (h *CalendarHandler) GetDatabases(c *gin.Context) {
	user := authdelivery.CurrentUser(c)

	databases, err := h.calendarUsecase.ListDatabases(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, databases)
}

// CreateSchedule creates a schedule entry owned by the caller
// POST /api/schedule/create
func (h *CalendarHandler) CreateSchedule(c *gin.Context) {
	user := authdelivery.CurrentUser(c)

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	schedule := &domain.Schedule{
		DatabaseID: req.DatabaseID,
		Title:      req.Title,
		Memo:       req.Memo,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}

	created, err := h.calendarUsecase.CreateSchedule(user, schedule)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, created)
}

// GetSchedules lists the caller's schedules
// GET /api/schedule
func (h *CalendarHandler) GetSchedules(c *gin.Context) {
	user := authdelivery.CurrentUser(c)

	schedules, err := h.calendarUsecase.ListSchedules(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// DeleteSchedule deletes a schedule by id.
// POST /api/schedule/delete
//
// This route is mounted without AuthMiddleware and performs no ownership
// check, matching the upstream API. Known defect, kept for compatibility;
// see DESIGN.md before changing.
func (h *CalendarHandler) DeleteSchedule(c *gin.Context) {
	var req DeleteScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	if err := h.calendarUsecase.DeleteSchedule(req.UUID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": req.UUID})
}
