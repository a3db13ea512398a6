package store

import (
	"context"

	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type MongoResources struct {
	collection *mongo.Collection
}

func NewMongoResources(db *mongo.Database) *MongoResources {
	return &MongoResources{collection: db.Collection("resources")}
}

func (s *MongoResources) List(ctx context.Context) ([]models.Resource, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	resources := []models.Resource{}
	if err := cursor.All(ctx, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

func (s *MongoResources) Create(ctx context.Context, resource *models.Resource) error {
	if resource.ID.IsZero() {
		resource.ID = bson.NewObjectID()
	}
	_, err := s.collection.InsertOne(ctx, resource)
	return err
}
