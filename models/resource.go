package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Resource is an external link shared in the directory.
type Resource struct {
	ID          bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string        `json:"title" bson:"title"`
	Link        string        `json:"link" bson:"link"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	Category    string        `json:"category,omitempty" bson:"category,omitempty"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
}

type ResourceInput struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Category    string `json:"category"`
}
