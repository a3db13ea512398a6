package store

import (
	"context"
	"testing"
	"time"

	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestMemoryUsers(t *testing.T) {
	ctx := context.Background()
	users := NewMemory().Users()

	alice := &models.User{Email: "alice@example.com", Name: "Alice", Interests: []string{"tech"}}
	require.NoError(t, users.Create(ctx, alice))
	assert.False(t, alice.ID.IsZero())

	t.Run("duplicate email", func(t *testing.T) {
		err := users.Create(ctx, &models.User{Email: "alice@example.com", Name: "Other"})
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("lookups", func(t *testing.T) {
		byEmail, err := users.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, byEmail.ID)

		byID, err := users.FindByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice", byID.Name)

		_, err = users.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)

		many, err := users.FindByIDs(ctx, []bson.ObjectID{alice.ID, bson.NewObjectID()})
		require.NoError(t, err)
		assert.Len(t, many, 1)
	})

	t.Run("partial profile update", func(t *testing.T) {
		bio := "Engineer"
		updated, err := users.UpdateProfile(ctx, alice.ID, ProfileChanges{Bio: &bio, UpdatedAt: time.Now()})
		require.NoError(t, err)
		assert.Equal(t, "Alice", updated.Name)
		assert.Equal(t, "Engineer", updated.Bio)
		assert.Equal(t, []string{"tech"}, updated.Interests)

		_, err = users.UpdateProfile(ctx, bson.NewObjectID(), ProfileChanges{Bio: &bio})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryResourcesKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	resources := NewMemory().Resources()

	require.NoError(t, resources.Create(ctx, &models.Resource{Title: "First", Link: "https://a.example"}))
	require.NoError(t, resources.Create(ctx, &models.Resource{Title: "Second", Link: "https://b.example"}))

	list, err := resources.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "First", list[0].Title)
	assert.Equal(t, "Second", list[1].Title)
}

func TestMemoryPhotos(t *testing.T) {
	ctx := context.Background()
	photos := NewMemory().Photos()
	owner := bson.NewObjectID()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	old := &models.Photo{Filename: "old.jpg", UploadedBy: owner, IsApproved: true, CreatedAt: base}
	hidden := &models.Photo{Filename: "hidden.jpg", UploadedBy: owner, IsApproved: false, CreatedAt: base.Add(time.Minute)}
	recent := &models.Photo{Filename: "recent.jpg", UploadedBy: bson.NewObjectID(), IsApproved: true, CreatedAt: base.Add(2 * time.Minute)}
	for _, p := range []*models.Photo{old, hidden, recent} {
		require.NoError(t, photos.Create(ctx, p))
	}

	approved, err := photos.ListApproved(ctx)
	require.NoError(t, err)
	require.Len(t, approved, 2)
	assert.Equal(t, "recent.jpg", approved[0].Filename)
	assert.Equal(t, "old.jpg", approved[1].Filename)

	own, err := photos.ListByUploader(ctx, owner)
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, "hidden.jpg", own[0].Filename)

	require.NoError(t, photos.Delete(ctx, old.ID))
	assert.ErrorIs(t, photos.Delete(ctx, old.ID), ErrNotFound)
	_, err = photos.FindByID(ctx, old.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
