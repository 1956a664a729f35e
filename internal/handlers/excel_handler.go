package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mgarrido/horarios-api/internal/excel"
	"github.com/mgarrido/horarios-api/internal/models"
	"github.com/mgarrido/horarios-api/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Password assigned to accounts synthesized during bulk import.
const importDefaultPassword = "123456"

// DownloadTemplate streams the fillable schedule template.
// Admin/coordinator only.
func (h *Handler) DownloadTemplate(c *gin.Context) {
	buf, err := excel.BuildTemplate()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build template"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=plantilla_horarios.xlsx")
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ImportSchedules ingests an uploaded xlsx file: unknown employees are
// created with the employee role and a default password, then each row's
// schedule is upserted keyed by user id. The per-row lookup-then-upsert is
// best-effort, not transactional: concurrent imports of the same person can
// race.
func (h *Handler) ImportSchedules(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	if !strings.HasSuffix(fileHeader.Filename, ".xlsx") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only .xlsx files are supported"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Error processing file: %v", err)})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Error processing file: %v", err)})
		return
	}

	rows, err := excel.ParseSchedules(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Error processing file: %v", err)})
		return
	}

	// One digest shared by every account created in this batch.
	defaultHash, err := utils.HashPassword(importDefaultPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash default password"})
		return
	}

	users := h.DB.Collection("users")
	schedules := h.DB.Collection("schedules")
	imported := 0
	created := 0

	for _, row := range rows {
		var user models.User
		err := users.FindOne(c.Request.Context(), bson.M{"full_name": row.FullName}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			user, err = h.createImportedUser(c, row.FullName, row.Service, defaultHash)
			if err == nil {
				created++
			}
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Error processing file: %v", err)})
			return
		}

		schedule := models.Schedule{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			Service:   row.Service,
			CreatedAt: time.Now().UTC(),
		}
		for field, value := range row.Times {
			if slot := schedule.Field(field); slot != nil {
				*slot = value
			}
		}

		_, err = schedules.UpdateOne(
			c.Request.Context(),
			bson.M{"user_id": user.ID},
			bson.M{"$set": schedule},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Error processing file: %v", err)})
			return
		}
		imported++
	}

	c.JSON(http.StatusOK, gin.H{
		"message":            fmt.Sprintf("Procesados %d horarios. Creados %d nuevos empleados.", imported, created),
		"imported_schedules": imported,
		"created_users":      created,
	})
}

func (h *Handler) createImportedUser(c *gin.Context, fullName, service, passwordHash string) (models.User, error) {
	users := h.DB.Collection("users")

	username := usernameFromName(fullName)
	err := users.FindOne(c.Request.Context(), bson.M{"username": username}).Err()
	if err == nil {
		username = fmt.Sprintf("%s_%s", username, uuid.NewString()[:8])
	} else if err != mongo.ErrNoDocuments {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        fmt.Sprintf("%s@empresa.com", username),
		FullName:     fullName,
		Role:         models.RoleEmployee,
		Service:      service,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
		PasswordHash: passwordHash,
	}
	if _, err := users.InsertOne(c.Request.Context(), user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// usernameFromName derives a login name from a person's full name: lowercase,
// spaces become underscores, dots are dropped.
func usernameFromName(fullName string) string {
	username := strings.ToLower(fullName)
	username = strings.ReplaceAll(username, " ", "_")
	username = strings.ReplaceAll(username, ".", "")
	return username
}

// ExportSchedules streams every schedule joined with its owning user as an
// xlsx attachment. Schedules whose user no longer resolves are skipped.
// Admin/coordinator only.
func (h *Handler) ExportSchedules(c *gin.Context) {
	cursor, err := h.DB.Collection("schedules").Find(c.Request.Context(), bson.M{})
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

	users := h.DB.Collection("users")
	rows := make([]excel.ExportRow, 0, len(schedules))
	for i := range schedules {
		schedule := &schedules[i]

		var user models.User
		err := users.FindOne(c.Request.Context(), bson.M{"id": schedule.UserID}).Decode(&user)
		if err != nil {
			continue
		}

		row := excel.ExportRow{
			FullName: user.FullName,
			Service:  schedule.Service,
			Times:    make(map[string]*string, len(models.ScheduleFields)),
		}
		for _, field := range models.ScheduleFields {
			row.Times[field] = *schedule.Field(field)
		}
		rows = append(rows, row)
	}

	buf, err := excel.BuildExport(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=horarios_exportados.xlsx")
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
