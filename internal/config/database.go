package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aabb-jequie/app-inscricao/internal/logging"
	"github.com/aabb-jequie/app-inscricao/internal/redisclient"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.uber.org/zap"
)

var (
	// MongoDB client
	MongoDB *mongo.Database
	// Redis client
	Redis *redisclient.Client
)

// InitMongoDB connects to MongoDB and makes sure the application indexes exist.
func InitMongoDB() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Configure connection pool with tracing monitor
	opts := options.Client().
		ApplyURI(AppConfig.MongoURI).
		SetMonitor(otelmongo.NewMonitor()).
		SetMaxPoolSize(50).
		SetMinPoolSize(2).
		SetMaxConnIdleTime(5 * time.Minute).
		SetRetryWrites(true).
		SetRetryReads(true)

	// Connect to MongoDB
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	MongoDB = client.Database(AppConfig.MongoDatabase)

	// Create indexes for the admin list and CPF lookups
	if err := EnsureApplicationIndexes(ctx, MongoDB.Collection(AppConfig.ApplicationCollection)); err != nil {
		logging.Logger.Error("failed to ensure indexes on startup", zap.Error(err))
	}

	logging.Logger.Info("connected to MongoDB",
		zap.String("uri", maskMongoURI(AppConfig.MongoURI)),
		zap.String("database", AppConfig.MongoDatabase),
	)
	return nil
}

// InitRedis initializes the Redis connection. A failed ping is logged but not
// fatal: CEP caching degrades to direct lookups.
func InitRedis() {
	// Create Redis client with optimized settings
	redisClient := redis.NewClient(&redis.Options{
		Addr:         AppConfig.RedisURI,
		Password:     AppConfig.RedisPassword,
		DB:           AppConfig.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	// Wrap with tracing
	Redis = redisclient.NewClient(redisClient)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Test connection
	if err := Redis.Ping(ctx).Err(); err != nil {
		logging.Logger.Error("failed to connect to Redis",
			zap.String("uri", AppConfig.RedisURI),
			zap.Error(err))
		return
	}

	logging.Logger.Info("connected to Redis",
		zap.String("uri", AppConfig.RedisURI))
}

// maskMongoURI hides credentials in a MongoDB URI.
func maskMongoURI(uri string) string {
	at := strings.LastIndex(uri, "@")
	if at < 0 {
		return uri
	}
	return "mongodb://****:****@" + uri[at+1:]
}

// EnsureApplicationIndexes creates the created_at and cpf indexes on the
// applications collection when they are missing.
func EnsureApplicationIndexes(ctx context.Context, collection *mongo.Collection) error {
	logger := logging.Logger.Named("database")

	// List existing indexes
	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		logger.Error("failed to list indexes", zap.Error(err))
		return err
	}
	defer cursor.Close(ctx)

	existing := make(map[string]bool)
	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			continue
		}
		if name, ok := index["name"].(string); ok {
			existing[name] = true
		}
	}

	// Create missing indexes
	var toCreate []mongo.IndexModel
	for _, model := range applicationIndexes() {
		if !existing[*model.Options.Name] {
			toCreate = append(toCreate, model)
		}
	}

	for _, model := range toCreate {
		if _, err := collection.Indexes().CreateOne(ctx, model); err != nil {
			// Another replica may have won the race.
			if mongo.IsDuplicateKeyError(err) {
				logger.Info("application index already exists (created by another instance)",
					zap.String("index", *model.Options.Name))
				continue
			}
			logger.Error("failed to create application index",
				zap.String("collection", collection.Name()),
				zap.String("index", *model.Options.Name),
				zap.Error(err))
			return err
		}
	}

	if len(toCreate) > 0 {
		logger.Info("created application collection indexes",
			zap.String("collection", collection.Name()),
			zap.Int("count", len(toCreate)))
	} else {
		logger.Debug("application collection indexes already exist",
			zap.String("collection", collection.Name()))
	}
	return nil
}

func applicationIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_at_-1"),
		},
		{
			Keys:    bson.D{{Key: "cpf", Value: 1}},
			Options: options.Index().SetName("cpf_1"),
		},
	}
}
