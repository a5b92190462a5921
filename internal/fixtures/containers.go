package fixtures

import (
	"context"
	"testing"

	"github.com/aabb-jequie/app-inscricao/internal/redisclient"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// skipWithoutDocker skips integration tests in -short mode or without a
// reachable container runtime.
func skipWithoutDocker(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
}

// MongoDatabase starts a MongoDB container and returns a database in it.
// Everything is torn down when the test ends.
func MongoDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	skipWithoutDocker(t)
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7.0")
	require.NoError(t, err, "failed to start MongoDB container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err, "failed to get MongoDB connection string")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err, "failed to connect to MongoDB")
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	require.NoError(t, client.Ping(ctx, nil), "failed to ping MongoDB")
	return client.Database("aabb_test")
}

// RedisClient starts a Redis container and returns a traced client for it.
func RedisClient(t *testing.T) *redisclient.Client {
	t.Helper()
	skipWithoutDocker(t)
	ctx := context.Background()

	container, err := redis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "failed to start Redis container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err, "failed to get Redis connection string")

	opts, err := goredis.ParseURL(uri)
	require.NoError(t, err)

	rdb := goredis.NewClient(opts)
	t.Cleanup(func() { _ = rdb.Close() })

	client := redisclient.NewClient(rdb)
	require.NoError(t, client.Ping(ctx).Err(), "failed to ping Redis")
	return client
}
