package handlers

import (
	"io"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/mgarrido/horarios-api/internal/middleware"
	"github.com/mgarrido/horarios-api/internal/models"
)

// newTestRouter wires the handlers against a mocked deployment, with the
// given user already resolved as if the auth middleware had run.
func newTestRouter(mt *mtest.T, user models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(mt.DB)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserKey, user)
		c.Next()
	})
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/init-admin", h.InitAdmin)
	r.GET("/schedules", h.GetSchedules)
	r.PUT("/schedules/:id", h.UpdateSchedule)
	r.GET("/schedule-requests", h.GetScheduleRequests)
	r.PUT("/schedule-requests/:id/respond", h.RespondToRequest)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func userDoc(id, username, role string, active bool, extra ...bson.E) bson.D {
	doc := bson.D{
		{Key: "id", Value: id},
		{Key: "username", Value: username},
		{Key: "email", Value: username + "@empresa.com"},
		{Key: "full_name", Value: "Test User"},
		{Key: "role", Value: role},
		{Key: "service", Value: "Urgencias"},
		{Key: "is_active", Value: active},
		{Key: "created_at", Value: primitive.NewDateTimeFromTime(time.Now())},
	}
	return append(doc, extra...)
}
