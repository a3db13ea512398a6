package service

import (
	"context"
	"errors"
	"strings"

	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/models"
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/storage"
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/store"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type GalleryService struct {
	photos     store.PhotoStore
	users      store.UserStore
	files      storage.FileStore
	publicPath string
}

func NewGalleryService(photos store.PhotoStore, users store.UserStore, files storage.FileStore, publicPath string) *GalleryService {
	return &GalleryService{photos: photos, users: users, files: files, publicPath: publicPath}
}

// PhotoURL is the public path a stored photo is served from.
func PhotoURL(publicPath, filename string) string {
	return strings.TrimRight(publicPath, "/") + "/" + storage.PhotosPrefix + "/" + filename
}

func (s *GalleryService) ListApproved(ctx context.Context) ([]models.GalleryPhoto, error) {
	photos, err := s.photos.ListApproved(ctx)
	if err != nil {
		return nil, serverError("Server error", err)
	}

	ids := make([]bson.ObjectID, 0, len(photos))
	seen := make(map[bson.ObjectID]struct{}, len(photos))
	for _, photo := range photos {
		if _, ok := seen[photo.UploadedBy]; !ok {
			seen[photo.UploadedBy] = struct{}{}
			ids = append(ids, photo.UploadedBy)
		}
	}

	uploaders, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, serverError("Server error", err)
	}
	names := make(map[bson.ObjectID]string, len(uploaders))
	for _, user := range uploaders {
		names[user.ID] = user.Name
	}

	views := make([]models.GalleryPhoto, 0, len(photos))
	for _, photo := range photos {
		if !photo.IsApproved {
			continue
		}
		views = append(views, models.GalleryPhoto{
			ID:         photo.ID.Hex(),
			Filename:   photo.Filename,
			Caption:    photo.Caption,
			UploadedBy: names[photo.UploadedBy],
			UploadedAt: photo.CreatedAt,
			URL:        PhotoURL(s.publicPath, photo.Filename),
		})
	}
	return views, nil
}

func (s *GalleryService) ListOwn(ctx context.Context, userID bson.ObjectID) ([]models.OwnPhoto, error) {
	photos, err := s.photos.ListByUploader(ctx, userID)
	if err != nil {
		return nil, serverError("Server error", err)
	}

	views := make([]models.OwnPhoto, 0, len(photos))
	for _, photo := range photos {
		views = append(views, models.OwnPhoto{
			ID:         photo.ID.Hex(),
			Filename:   photo.Filename,
			Caption:    photo.Caption,
			IsApproved: photo.IsApproved,
			UploadedAt: photo.CreatedAt,
			URL:        PhotoURL(s.publicPath, photo.Filename),
		})
	}
	return views, nil
}

// Delete removes the file first and the record second. A missing file counts
// as removed; a failed removal keeps the record.
func (s *GalleryService) Delete(ctx context.Context, photoID string, callerID bson.ObjectID) error {
	id, err := bson.ObjectIDFromHex(photoID)
	if err != nil {
		return notFoundError("Photo not found")
	}

	photo, err := s.photos.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError("Photo not found")
	}
	if err != nil {
		return serverError("Server error", err)
	}

	if photo.UploadedBy != callerID {
		return forbiddenError("Not authorized")
	}

	if err := s.files.Remove(ctx, photo.Filename); err != nil {
		return serverError("Server error", err)
	}

	err = s.photos.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError("Photo not found")
	}
	if err != nil {
		return serverError("Server error", err)
	}
	return nil
}
