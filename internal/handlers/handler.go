package handlers

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Handler carries the shared dependencies of every endpoint. The database
// handle lives from process start to shutdown and is injected here instead of
// being a package-level global.
type Handler struct {
	DB *mongo.Database
}

func NewHandler(db *mongo.Database) *Handler {
	return &Handler{DB: db}
}
