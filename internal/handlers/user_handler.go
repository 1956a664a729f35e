package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mgarrido/horarios-api/internal/models"
	"github.com/mgarrido/horarios-api/internal/utils"
)

// GetUsers lists every registered user. Admin/coordinator only.
func (h *Handler) GetUsers(c *gin.Context) {
	h.listUsers(c, bson.M{})
}

// GetEmployees lists users with the employee role. Admin/coordinator only.
func (h *Handler) GetEmployees(c *gin.Context) {
	h.listUsers(c, bson.M{"role": models.RoleEmployee})
}

func (h *Handler) listUsers(c *gin.Context, filter bson.M) {
	cursor, err := h.DB.Collection("users").Find(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	defer cursor.Close(c.Request.Context())

	var users []models.User
	if err = cursor.All(c.Request.Context(), &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode users"})
		return
	}
	if users == nil {
		users = make([]models.User, 0)
	}

	c.JSON(http.StatusOK, users)
}

// GetServices returns the distinct non-empty service names across all users.
func (h *Handler) GetServices(c *gin.Context) {
	values, err := h.DB.Collection("users").Distinct(c.Request.Context(), "service", bson.M{"service": bson.M{"$ne": ""}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve services"})
		return
	}

	services := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			services = append(services, s)
		}
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

// InitAdmin bootstraps the default admin account. Calling it again once any
// admin exists is a no-op.
func (h *Handler) InitAdmin(c *gin.Context) {
	collection := h.DB.Collection("users")
	err := collection.FindOne(c.Request.Context(), bson.M{"role": models.RoleAdmin}).Err()
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Admin user already exists"})
		return
	}
	if err != mongo.ErrNoDocuments {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check for admin user"})
		return
	}

	hashedPassword, err := utils.HashPassword("admin123")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	admin := models.User{
		ID:           uuid.NewString(),
		Username:     "admin",
		Email:        "admin@horarios.com",
		FullName:     "Administrador",
		Role:         models.RoleAdmin,
		Service:      "Administración",
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
		PasswordHash: hashedPassword,
	}
	if _, err := collection.InsertOne(c.Request.Context(), admin); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create admin user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Admin user created successfully",
		"username": "admin",
		"password": "admin123",
	})
}
