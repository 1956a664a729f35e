package models

import "time"

// User roles. Role is assigned at registration and never changed afterwards.
const (
	RoleAdmin       = "admin"
	RoleCoordinator = "coordinator"
	RoleEmployee    = "employee"
)

type User struct {
	ID           string    `bson:"id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	FullName     string    `bson:"full_name" json:"full_name"`
	Role         string    `bson:"role" json:"role"`
	Service      string    `bson:"service" json:"service"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	PasswordHash string    `bson:"password_hash" json:"-"` // Hide from JSON responses
}
