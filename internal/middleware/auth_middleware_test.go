package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/mgarrido/horarios-api/internal/models"
	"github.com/mgarrido/horarios-api/internal/utils"
)

func authRouter(mt *mtest.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(mt.DB), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": CurrentUser(c).Username})
	})
	return r
}

func getWithToken(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func activeUserDoc(username string, active bool) bson.D {
	return bson.D{
		{Key: "id", Value: "u1"},
		{Key: "username", Value: username},
		{Key: "email", Value: username + "@empresa.com"},
		{Key: "full_name", Value: "Test User"},
		{Key: "role", Value: models.RoleEmployee},
		{Key: "service", Value: "Urgencias"},
		{Key: "is_active", Value: active},
		{Key: "created_at", Value: primitive.NewDateTimeFromTime(time.Now())},
	}
}

func TestAuthResolvesSubjectToUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("active user", func(mt *mtest.T) {
		mt.Setenv("JWT_SECRET", "test-secret")
		token, err := utils.GenerateJWT("jdoe", time.Minute)
		if err != nil {
			mt.Fatalf("generate token: %v", err)
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "horarios.users", mtest.FirstBatch,
			activeUserDoc("jdoe", true)))

		w := getWithToken(authRouter(mt), token)
		if w.Code != http.StatusOK {
			mt.Fatalf("expected %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "jdoe") {
			mt.Fatalf("handler did not see the resolved user: %s", w.Body.String())
		}
	})
}

func TestAuthRejectsInactiveUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("inactive user", func(mt *mtest.T) {
		mt.Setenv("JWT_SECRET", "test-secret")
		token, err := utils.GenerateJWT("jdoe", time.Minute)
		if err != nil {
			mt.Fatalf("generate token: %v", err)
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "horarios.users", mtest.FirstBatch,
			activeUserDoc("jdoe", false)))

		w := getWithToken(authRouter(mt), token)
		if w.Code != http.StatusBadRequest {
			mt.Fatalf("expected %d, got %d: %s", http.StatusBadRequest, w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "Inactive user") {
			mt.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})
}

func TestAuthRejectsUnknownSubject(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deleted user", func(mt *mtest.T) {
		mt.Setenv("JWT_SECRET", "test-secret")
		token, err := utils.GenerateJWT("ghost", time.Minute)
		if err != nil {
			mt.Fatalf("generate token: %v", err)
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "horarios.users", mtest.FirstBatch))

		w := getWithToken(authRouter(mt), token)
		if w.Code != http.StatusUnauthorized {
			mt.Fatalf("expected %d, got %d: %s", http.StatusUnauthorized, w.Code, w.Body.String())
		}
	})
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("no header", func(mt *mtest.T) {
		w := getWithToken(authRouter(mt), "")
		if w.Code != http.StatusUnauthorized {
			mt.Fatalf("expected %d, got %d: %s", http.StatusUnauthorized, w.Code, w.Body.String())
		}
	})
}

func TestRequireRolesGatesByRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	serve := func(role string) *httptest.ResponseRecorder {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Set(UserKey, models.User{Role: role})
			c.Next()
		})
		r.GET("/staff", RequireRoles(models.RoleAdmin, models.RoleCoordinator), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/staff", nil))
		return w
	}

	if w := serve(models.RoleEmployee); w.Code != http.StatusForbidden {
		t.Fatalf("employee: expected %d, got %d", http.StatusForbidden, w.Code)
	}
	if w := serve(models.RoleCoordinator); w.Code != http.StatusOK {
		t.Fatalf("coordinator: expected %d, got %d", http.StatusOK, w.Code)
	}
	if w := serve(models.RoleAdmin); w.Code != http.StatusOK {
		t.Fatalf("admin: expected %d, got %d", http.StatusOK, w.Code)
	}
}
