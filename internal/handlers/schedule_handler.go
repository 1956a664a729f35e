package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mgarrido/horarios-api/internal/middleware"
	"github.com/mgarrido/horarios-api/internal/models"
)

// CreateSchedule inserts a weekly schedule as given, without validating the
// time fields. Admin/coordinator only.
func (h *Handler) CreateSchedule(c *gin.Context) {
	var schedule models.Schedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}
	schedule.CreatedAt = time.Now().UTC()

	if _, err := h.DB.Collection("schedules").InsertOne(c.Request.Context(), schedule); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedule"})
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// GetSchedules lists schedules. Employees only see their own; admins and
// coordinators see everything.
func (h *Handler) GetSchedules(c *gin.Context) {
	user := middleware.CurrentUser(c)

	filter := bson.M{}
	if user.Role == models.RoleEmployee {
		filter["user_id"] = user.ID
	}

	cursor, err := h.DB.Collection("schedules").Find(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve schedules"})
		return
	}
	defer cursor.Close(c.Request.Context())

	var schedules []models.Schedule
	if err = cursor.All(c.Request.Context(), &schedules); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode schedules"})
		return
	}
	if schedules == nil {
		schedules = make([]models.Schedule, 0)
	}

	c.JSON(http.StatusOK, schedules)
}

// GetUserSchedule fetches the schedule of one user. Employees may only fetch
// their own.
func (h *Handler) GetUserSchedule(c *gin.Context) {
	user := middleware.CurrentUser(c)
	userID := c.Param("user_id")

	if user.Role == models.RoleEmployee && user.ID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
		return
	}

	h.findScheduleByUser(c, userID)
}

// GetMySchedule fetches the authenticated user's own schedule.
func (h *Handler) GetMySchedule(c *gin.Context) {
	h.findScheduleByUser(c, middleware.CurrentUser(c).ID)
}

func (h *Handler) findScheduleByUser(c *gin.Context, userID string) {
	var schedule models.Schedule
	err := h.DB.Collection("schedules").FindOne(c.Request.Context(), bson.M{"user_id": userID}).Decode(&schedule)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// UpdateSchedule replaces the schedule matched by id. Admin/coordinator only.
func (h *Handler) UpdateSchedule(c *gin.Context) {
	scheduleID := c.Param("id")

	var schedule models.Schedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	schedule.ID = scheduleID
	if schedule.CreatedAt.IsZero() {
		schedule.CreatedAt = time.Now().UTC()
	}

	result, err := h.DB.Collection("schedules").UpdateOne(
		c.Request.Context(),
		bson.M{"id": scheduleID},
		bson.M{"$set": schedule},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update schedule"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}

	c.JSON(http.StatusOK, schedule)
}
