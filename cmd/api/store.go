package main

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/JacobNatural/task-manager/internal/adapter/db/mongodb"
	"github.com/JacobNatural/task-manager/internal/adapter/db/mysqldb"
	"github.com/JacobNatural/task-manager/internal/adapter/http/handlers"
	"github.com/JacobNatural/task-manager/internal/config"
	"github.com/JacobNatural/task-manager/internal/core/ports"
)

// store bundles the repositories of one backend with its lifecycle hooks.
type store struct {
	tasks ports.TaskRepository
	users ports.UserRepository
	ping  handlers.PingFunc
	close func(ctx context.Context) error
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		return openMongo(ctx, cfg)
	case config.StoreMySQL:
		return openMySQL(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

func openMongo(ctx context.Context, cfg *config.Config) (*store, error) {
	client, err := mongodb.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	database := client.Database(cfg.MongoDBName)
	tasks := database.Collection(cfg.MongoTasksCollection)
	users := database.Collection(cfg.MongoUsersCollection)
	if err := mongodb.EnsureIndexes(ctx, tasks, users); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &store{
		tasks: mongodb.NewTaskRepository(tasks),
		users: mongodb.NewUserRepository(users),
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		close: client.Disconnect,
	}, nil
}

func openMySQL(ctx context.Context, cfg *config.Config) (*store, error) {
	db, err := mysqldb.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &store{
		tasks: mysqldb.NewTaskRepository(db),
		users: mysqldb.NewUserRepository(db),
		ping:  db.PingContext,
		close: func(context.Context) error {
			return db.Close()
		},
	}, nil
}
