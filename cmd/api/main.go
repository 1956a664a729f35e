package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mgarrido/horarios-api/internal/handlers"
	"github.com/mgarrido/horarios-api/internal/middleware"
	"github.com/mgarrido/horarios-api/internal/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Println("JWT_SECRET is NOT SET.")
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(os.Getenv("MONGO_URI")))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())
	db := client.Database(os.Getenv("MONGO_DATABASE"))
	log.Println("Successfully connected to MongoDB!")

	// Registration relies on a duplicate-key error to close the
	// check-then-insert race on usernames.
	_, err = db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatalf("Failed to create username index: %v", err)
	}

	r := setupRouter(db)

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080" // Default port
	}
	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}

func setupRouter(db *mongo.Database) *gin.Engine {
	h := handlers.NewHandler(db)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	// --- Routes ---
	open := r.Group("/api")
	{
		open.POST("/register", h.Register)
		open.POST("/login", h.Login)
		open.GET("/configuration", h.GetConfiguration)
		open.POST("/init-admin", h.InitAdmin)
	}

	api := r.Group("/api")
	api.Use(middleware.Auth(db))
	{
		api.GET("/me", h.Me)
		api.GET("/schedules", h.GetSchedules)
		api.GET("/schedules/:user_id", h.GetUserSchedule)
		api.GET("/my-schedule", h.GetMySchedule)
		api.GET("/schedule-requests", h.GetScheduleRequests)
		api.GET("/services", h.GetServices)
		api.POST("/schedule-requests", middleware.RequireRoles(models.RoleEmployee), h.CreateScheduleRequest)

		staff := api.Group("", middleware.RequireRoles(models.RoleAdmin, models.RoleCoordinator))
		{
			staff.GET("/users", h.GetUsers)
			staff.GET("/employees", h.GetEmployees)
			staff.POST("/schedules", h.CreateSchedule)
			staff.PUT("/schedules/:id", h.UpdateSchedule)
			staff.GET("/pending-requests", h.GetPendingRequests)
			staff.PUT("/schedule-requests/:id/respond", h.RespondToRequest)
			staff.GET("/download-template", h.DownloadTemplate)
			staff.POST("/import-schedules", h.ImportSchedules)
			staff.GET("/export-schedules", h.ExportSchedules)
			staff.PUT("/configuration", h.UpdateConfiguration)
		}
	}

	return r
}
