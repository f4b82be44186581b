package database

import (
	"context"
	"errors"
	"time"

	"customers-backend/pkg/config"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var ErrMongoNotReady = errors.New("failed to connect to mongo")

const (
	mongoConnectTimeout = 10 * time.Second
	mongoRetryAttempts  = 3
	mongoRetryInterval  = 2 * time.Second
)

// NewMongoConnection connects to MongoDB and returns the client together
// with the configured database handle. The connection is verified with a
// ping and retried a few times before giving up.
func NewMongoConnection(ctx context.Context, cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	for i := 0; i < mongoRetryAttempts; i++ {
		client, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.MongoURI).
				SetConnectTimeout(mongoConnectTimeout),
		)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
			err = client.Ping(pingCtx, nil)
			cancel()
			if err == nil {
				return client, client.Database(cfg.MongoDatabase), nil
			}
			_ = client.Disconnect(ctx)
		}

		select {
		case <-ctx.Done():
			return nil, nil, errors.Join(ErrMongoNotReady, ctx.Err())
		case <-time.After(mongoRetryInterval):
		}
	}

	return nil, nil, ErrMongoNotReady
}
