package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultResultsKept = 100

// RedisStorage implements the Storage interface using Redis for session
// results and the filesystem for world files
type RedisStorage struct {
	worldDir
	client *redis.Client
	logger *slog.Logger
	keep   int64
}

// Ensure RedisStorage implements Storage interface
var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance. It does not
// contact Redis; use WaitForConnection during startup.
func NewRedisStorage(redisURL string, dataDir string, logger *slog.Logger) (*RedisStorage, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	return &RedisStorage{
		worldDir: newWorldDir(dataDir, logger),
		client:   redis.NewClient(opt),
		logger:   logger,
		keep:     defaultResultsKept,
	}, nil
}

// Health and lifecycle methods

func (r *RedisStorage) Ping(ctx context.Context) error {
	cmd := r.client.Ping(ctx)
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

// Result operations (Redis-backed)

func resultsKey(world string) string {
	return "results:" + world
}

// SaveResult pushes the result onto the world's list and trims it.
func (r *RedisStorage) SaveResult(ctx context.Context, result Result) error {
	if result.FinishedAt.IsZero() {
		result.FinishedAt = time.Now()
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	key := resultsKey(result.World)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, data)
		pipe.LTrim(ctx, key, 0, r.keep-1)
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to save result", "session_id", result.SessionID, "error", err)
		return fmt.Errorf("failed to save result: %w", err)
	}
	return nil
}

func (r *RedisStorage) ListResults(ctx context.Context, world string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = int(r.keep)
	}

	cmd := r.client.LRange(ctx, resultsKey(world), 0, int64(limit-1))
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			return []Result{}, nil
		}
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	results := make([]Result, 0, len(cmd.Val()))
	for _, raw := range cmd.Val() {
		var res Result
		if err := json.Unmarshal([]byte(raw), &res); err != nil {
			r.logger.Warn("Skipping unreadable result", "world", world, "error", err)
			continue
		}
		results = append(results, res)
	}
	return results, nil
}
