package store

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Memory keeps every collection in process memory. It backs STORE_DRIVER=memory
// and the tests; data is lost on restart.
type Memory struct {
	mu        sync.RWMutex
	users     []models.User
	resources []models.Resource
	photos    []models.Photo
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Users() UserStore         { return memoryUsers{m} }
func (m *Memory) Resources() ResourceStore { return memoryResources{m} }
func (m *Memory) Photos() PhotoStore       { return memoryPhotos{m} }

func (m *Memory) Ping(ctx context.Context) error { return ctx.Err() }

type memoryUsers struct{ m *Memory }

func (s memoryUsers) Create(_ context.Context, user *models.User) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for _, existing := range s.m.users {
		if existing.Email == user.Email {
			return ErrDuplicateEmail
		}
	}
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	s.m.users = append(s.m.users, cloneUser(*user))
	return nil
}

func (s memoryUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	for _, user := range s.m.users {
		if user.Email == email {
			found := cloneUser(user)
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s memoryUsers) FindByID(_ context.Context, id bson.ObjectID) (*models.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	for _, user := range s.m.users {
		if user.ID == id {
			found := cloneUser(user)
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s memoryUsers) FindByIDs(_ context.Context, ids []bson.ObjectID) ([]models.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	users := []models.User{}
	for _, user := range s.m.users {
		if slices.Contains(ids, user.ID) {
			users = append(users, cloneUser(user))
		}
	}
	return users, nil
}

func (s memoryUsers) UpdateProfile(_ context.Context, id bson.ObjectID, changes ProfileChanges) (*models.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for i := range s.m.users {
		user := &s.m.users[i]
		if user.ID != id {
			continue
		}
		if changes.Name != nil {
			user.Name = *changes.Name
		}
		if changes.Bio != nil {
			user.Bio = *changes.Bio
		}
		if changes.Interests != nil {
			user.Interests = slices.Clone(*changes.Interests)
		}
		user.UpdatedAt = changes.UpdatedAt

		updated := cloneUser(*user)
		return &updated, nil
	}
	return nil, ErrNotFound
}

type memoryResources struct{ m *Memory }

func (s memoryResources) List(_ context.Context) ([]models.Resource, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	return append([]models.Resource{}, s.m.resources...), nil
}

func (s memoryResources) Create(_ context.Context, resource *models.Resource) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if resource.ID.IsZero() {
		resource.ID = bson.NewObjectID()
	}
	s.m.resources = append(s.m.resources, *resource)
	return nil
}

type memoryPhotos struct{ m *Memory }

func (s memoryPhotos) Create(_ context.Context, photo *models.Photo) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if photo.ID.IsZero() {
		photo.ID = bson.NewObjectID()
	}
	s.m.photos = append(s.m.photos, *photo)
	return nil
}

func (s memoryPhotos) FindByID(_ context.Context, id bson.ObjectID) (*models.Photo, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	for _, photo := range s.m.photos {
		if photo.ID == id {
			found := photo
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s memoryPhotos) ListApproved(_ context.Context) ([]models.Photo, error) {
	return s.filter(func(p models.Photo) bool { return p.IsApproved }), nil
}

func (s memoryPhotos) ListByUploader(_ context.Context, uploader bson.ObjectID) ([]models.Photo, error) {
	return s.filter(func(p models.Photo) bool { return p.UploadedBy == uploader }), nil
}

func (s memoryPhotos) Delete(_ context.Context, id bson.ObjectID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for i, photo := range s.m.photos {
		if photo.ID == id {
			s.m.photos = slices.Delete(s.m.photos, i, i+1)
			return nil
		}
	}
	return ErrNotFound
}

// filter returns matching photos newest first; insertion order breaks ties.
func (s memoryPhotos) filter(keep func(models.Photo) bool) []models.Photo {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	photos := []models.Photo{}
	for i := len(s.m.photos) - 1; i >= 0; i-- {
		if keep(s.m.photos[i]) {
			photos = append(photos, s.m.photos[i])
		}
	}
	sort.SliceStable(photos, func(i, j int) bool {
		return photos[i].CreatedAt.After(photos[j].CreatedAt)
	})
	return photos
}

func cloneUser(user models.User) models.User {
	user.Interests = slices.Clone(user.Interests)
	return user
}
