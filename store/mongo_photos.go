package store

import (
	"context"
	"errors"

	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type MongoPhotos struct {
	collection *mongo.Collection
}

func NewMongoPhotos(db *mongo.Database) *MongoPhotos {
	return &MongoPhotos{collection: db.Collection("photos")}
}

func (s *MongoPhotos) Create(ctx context.Context, photo *models.Photo) error {
	if photo.ID.IsZero() {
		photo.ID = bson.NewObjectID()
	}
	_, err := s.collection.InsertOne(ctx, photo)
	return err
}

func (s *MongoPhotos) FindByID(ctx context.Context, id bson.ObjectID) (*models.Photo, error) {
	photo := &models.Photo{}
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(photo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *MongoPhotos) ListApproved(ctx context.Context) ([]models.Photo, error) {
	return s.find(ctx, bson.M{"isApproved": true})
}

func (s *MongoPhotos) ListByUploader(ctx context.Context, uploader bson.ObjectID) ([]models.Photo, error) {
	return s.find(ctx, bson.M{"uploadedBy": uploader})
}

func (s *MongoPhotos) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoPhotos) find(ctx context.Context, filter bson.M) ([]models.Photo, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := s.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	photos := []models.Photo{}
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}
