package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mgarrido/horarios-api/internal/models"
)

// GetConfiguration returns the configuration singleton, creating the default
// one on first read. Open endpoint: the frontend needs it before login.
func (h *Handler) GetConfiguration(c *gin.Context) {
	collection := h.DB.Collection("configurations")

	var config models.Configuration
	err := collection.FindOne(c.Request.Context(), bson.M{}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		config = models.Configuration{
			ID:              uuid.NewString(),
			BackgroundColor: models.DefaultBackgroundColor,
			UpdatedAt:       time.Now().UTC(),
		}
		if _, err := collection.InsertOne(c.Request.Context(), config); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create configuration"})
			return
		}
		c.JSON(http.StatusOK, config)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve configuration"})
		return
	}

	c.JSON(http.StatusOK, config)
}

// UpdateConfiguration replaces the singleton via an empty-filter upsert:
// whichever document exists is overwritten, or one is inserted.
// Admin/coordinator only.
func (h *Handler) UpdateConfiguration(c *gin.Context) {
	var req struct {
		BackgroundColor string `json:"background_color" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	config := models.Configuration{
		ID:              uuid.NewString(),
		BackgroundColor: req.BackgroundColor,
		UpdatedAt:       time.Now().UTC(),
	}

	_, err := h.DB.Collection("configurations").UpdateOne(
		c.Request.Context(),
		bson.M{},
		bson.M{"$set": config},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update configuration"})
		return
	}

	c.JSON(http.StatusOK, config)
}
