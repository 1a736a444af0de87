// Package mongodb contains the concrete implementation of the persistence
// layer using the official MongoDB driver. Each operation is a single-document
// round-trip; the store's per-document atomicity is the only consistency
// mechanism this service relies on.
package mongodb

import (
	"context"
	"log/slog"

	"notely/config"
	"notely/internal/domain/lifecycle"
	"notely/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const (
	usersCollection = "users"
	notesCollection = "notes"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB database handle. The connection is verified with a
// ping on startup so the process fails fast instead of serving traffic
// without a store, and released on shutdown.
func New(params Params) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(params.Config.Mongo.URI).
		SetServerSelectionTimeout(params.Config.Mongo.ConnectTimeout)

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			params.Logger.Info("MongoDB connection established",
				slog.String("database", params.Config.Mongo.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			params.Logger.Info("Closing MongoDB connection")

			return errors.WithStack(client.Disconnect(stopCtx))
		},
	})

	return client.Database(params.Config.Mongo.Database), nil
}
