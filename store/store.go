// Package store persists users, resources and photo metadata.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	ErrNotFound       = errors.New("store: not found")
	ErrDuplicateEmail = errors.New("store: email already registered")
)

// ProfileChanges is a partial update; nil fields are left untouched.
type ProfileChanges struct {
	Name      *string
	Bio       *string
	Interests *[]string
	UpdatedAt time.Time
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]models.User, error)
	UpdateProfile(ctx context.Context, id bson.ObjectID, changes ProfileChanges) (*models.User, error)
}

type ResourceStore interface {
	List(ctx context.Context) ([]models.Resource, error)
	Create(ctx context.Context, resource *models.Resource) error
}

type PhotoStore interface {
	Create(ctx context.Context, photo *models.Photo) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Photo, error)
	// ListApproved and ListByUploader return newest first.
	ListApproved(ctx context.Context) ([]models.Photo, error)
	ListByUploader(ctx context.Context, uploader bson.ObjectID) ([]models.Photo, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type Pinger interface {
	Ping(ctx context.Context) error
}
