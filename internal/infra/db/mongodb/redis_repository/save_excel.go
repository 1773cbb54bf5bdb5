package redis_repository

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/officefund/expense-backend/internal/infra/db/mongodb/helpers"
)

// SaveExcel caches a serialized workbook under key, base64-encoded, with an
// expiration so the cache never outlives fresh expense data for long.
func SaveExcel(redisURL string, key string, data []byte, expiration time.Duration) error {
	redisClient, err := helpers.RedisHelper(redisURL)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	encodedData := base64.StdEncoding.EncodeToString(data)

	if err := redisClient.Set(ctx, key, encodedData, expiration).Err(); err != nil {
		return fmt.Errorf("error saving Excel to Redis: %w", err)
	}

	return nil
}
