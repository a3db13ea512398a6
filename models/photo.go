package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Photo is the metadata of an uploaded image. The bytes live in the file
// store under Filename.
type Photo struct {
	ID           bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Filename     string        `json:"filename" bson:"filename"`
	OriginalName string        `json:"originalName" bson:"originalName"`
	MimeType     string        `json:"mimetype" bson:"mimetype"`
	Size         int64         `json:"size" bson:"size"`
	Path         string        `json:"path" bson:"path"`
	Caption      string        `json:"caption" bson:"caption"`
	UploadedBy   bson.ObjectID `json:"uploadedBy" bson:"uploadedBy"`
	IsApproved   bool          `json:"isApproved" bson:"isApproved"`
	CreatedAt    time.Time     `json:"createdAt" bson:"createdAt"`
}

// GalleryPhoto is the public view of an approved photo.
type GalleryPhoto struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Caption    string    `json:"caption"`
	UploadedBy string    `json:"uploadedBy"`
	UploadedAt time.Time `json:"uploadedAt"`
	URL        string    `json:"url"`
}

// OwnPhoto is the uploader's view of one of their photos.
type OwnPhoto struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Caption    string    `json:"caption"`
	IsApproved bool      `json:"isApproved"`
	UploadedAt time.Time `json:"uploadedAt"`
	URL        string    `json:"url"`
}

type PhotoSummary struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Caption    string    `json:"caption"`
	UploadedAt time.Time `json:"uploadedAt"`
}
