package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const retryInterval = 5 * time.Second

// ConnectMongoWithRetry dials MongoDB and verifies the connection with a
// ping before handing the client back. Container orchestration often
// starts the API before the database is ready, hence the retry loop.
func ConnectMongoWithRetry(uri string, maxRetries int) (*mongo.Client, error) {
	var client *mongo.Client
	var err error

	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err == nil {
			err = client.Ping(ctx, readpref.Primary())
			if err == nil {
				cancel()
				zap.L().Info("connected to mongodb")
				return client, nil
			}
		}
		cancel()

		zap.L().Warn("mongodb retry failed",
			zap.Int("attempt", i),
			zap.Int("max", maxRetries),
			zap.Error(err),
		)
		time.Sleep(retryInterval)
	}

	return nil, fmt.Errorf("connect mongodb: %w", err)
}

func ConnectRedisWithRetry(addr string, maxRetries int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	for i := 1; i <= maxRetries; i++ {
		if err := rdb.Ping(context.Background()).Err(); err == nil {
			zap.L().Info("connected to redis")
			return rdb, nil
		}

		zap.L().Warn("redis retry failed",
			zap.Int("attempt", i),
			zap.Int("max", maxRetries),
		)
		time.Sleep(retryInterval)
	}

	return nil, fmt.Errorf("failed to connect redis")
}

func ConnectKafkaWithRetry(broker string, maxRetries int) error {
	for i := 1; i <= maxRetries; i++ {
		conn, err := kafka.Dial("tcp", broker)
		if err == nil {
			conn.Close()
			zap.L().Info("connected to kafka")
			return nil
		}

		zap.L().Warn("kafka retry failed",
			zap.Int("attempt", i),
			zap.Int("max", maxRetries),
		)
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("failed to connect kafka")
}
