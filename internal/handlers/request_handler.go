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

type CreateRequestRequest struct {
	RequestedDate     string  `json:"requested_date" binding:"required"`
	RequestType       string  `json:"request_type" binding:"required,oneof=schedule_change day_off"`
	CurrentSchedule   *string `json:"current_schedule"`
	RequestedSchedule *string `json:"requested_schedule"`
	Reason            string  `json:"reason" binding:"required"`
}

// CreateScheduleRequest files a schedule-change or day-off request. Employee
// only; the employee id is always the caller's, never taken from the body.
func (h *Handler) CreateScheduleRequest(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	request := models.ScheduleRequest{
		ID:                uuid.NewString(),
		EmployeeID:        user.ID,
		RequestedDate:     req.RequestedDate,
		RequestType:       req.RequestType,
		CurrentSchedule:   req.CurrentSchedule,
		RequestedSchedule: req.RequestedSchedule,
		Reason:            req.Reason,
		Status:            models.StatusPending,
		CreatedAt:         time.Now().UTC(),
	}

	if _, err := h.DB.Collection("schedule_requests").InsertOne(c.Request.Context(), request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request"})
		return
	}

	c.JSON(http.StatusOK, request)
}

// GetScheduleRequests lists requests. Employees only see their own; admins
// and coordinators see everything.
func (h *Handler) GetScheduleRequests(c *gin.Context) {
	user := middleware.CurrentUser(c)

	filter := bson.M{}
	if user.Role == models.RoleEmployee {
		filter["employee_id"] = user.ID
	}

	h.listRequests(c, filter)
}

// GetPendingRequests lists requests still awaiting a response.
// Admin/coordinator only.
func (h *Handler) GetPendingRequests(c *gin.Context) {
	h.listRequests(c, bson.M{"status": models.StatusPending})
}

func (h *Handler) listRequests(c *gin.Context, filter bson.M) {
	cursor, err := h.DB.Collection("schedule_requests").Find(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve requests"})
		return
	}
	defer cursor.Close(c.Request.Context())

	var requests []models.ScheduleRequest
	if err = cursor.All(c.Request.Context(), &requests); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode requests"})
		return
	}
	if requests == nil {
		requests = make([]models.ScheduleRequest, 0)
	}

	c.JSON(http.StatusOK, requests)
}

type RespondRequest struct {
	Status   string `json:"status" binding:"required,oneof=approved rejected"`
	Response string `json:"response" binding:"required"`
}

// RespondToRequest approves or rejects a request, recording who responded and
// when. A second response overwrites the first; there is no terminal-state
// guard, so coordinators can correct a mistaken decision.
func (h *Handler) RespondToRequest(c *gin.Context) {
	requestID := c.Param("id")

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"status":               req.Status,
		"coordinator_response": req.Response,
		"processed_by":         user.ID,
		"processed_at":         now,
	}}

	collection := h.DB.Collection("schedule_requests")
	if _, err := collection.UpdateOne(c.Request.Context(), bson.M{"id": requestID}, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
		return
	}

	var updated models.ScheduleRequest
	err := collection.FindOne(c.Request.Context(), bson.M{"id": requestID}).Decode(&updated)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}
