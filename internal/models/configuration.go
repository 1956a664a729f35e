package models

import "time"

// DefaultBackgroundColor is used when the configuration singleton is created
// lazily on first read.
const DefaultBackgroundColor = "#ffffff"

// Configuration is a singleton document: exactly one is expected to exist in
// its collection, addressed with an empty filter.
type Configuration struct {
	ID              string    `bson:"id" json:"id"`
	BackgroundColor string    `bson:"background_color" json:"background_color"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
