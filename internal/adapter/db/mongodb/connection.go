package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/JacobNatural/task-manager/internal/config"
)

// Connect opens a client for conf.MongoURI and pings the primary before
// handing it out.
func Connect(ctx context.Context, conf *config.Config) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the secondary indexes the repositories query on.
// Creating an index that already exists is a no-op on the server.
func EnsureIndexes(ctx context.Context, tasks, users *mongo.Collection) error {
	if _, err := tasks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: fieldUserID, Value: 1}},
		Options: options.Index().SetName("tasks_user_id"),
	}); err != nil {
		return fmt.Errorf("create tasks index: %w", err)
	}

	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: fieldUsername, Value: 1}},
		Options: options.Index().SetName("users_username"),
	}); err != nil {
		return fmt.Errorf("create users index: %w", err)
	}

	return nil
}
