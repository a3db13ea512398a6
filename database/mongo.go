package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func Connect(uri, database string, timeout time.Duration) (*Mongo, error) {
	connectionString := options.Client().ApplyURI(uri).SetTimeout(timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(connectionString)
	if err != nil {
		log.Println("Mongo Connect error:", err)
		return nil, err
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		log.Println("Mongo Ping error:", err)
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	log.Println("MongoDB connected successfully")
	return &Mongo{Client: client, DB: client.Database(database)}, nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, nil)
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// EnsureIndexes creates the unique email index and the photo listing indexes.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.DB.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = m.DB.Collection("photos").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "isApproved", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "uploadedBy", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	return err
}
