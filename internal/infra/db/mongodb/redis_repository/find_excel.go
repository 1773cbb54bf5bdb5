package redis_repository

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/officefund/expense-backend/internal/infra/db/mongodb/helpers"
)

// FindExcel returns the cached workbook bytes for key, or an error when the
// key is absent or Redis is unreachable.
func FindExcel(redisURL string, key string) ([]byte, error) {
	redisClient, err := helpers.RedisHelper(redisURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	encodedExcel, err := redisClient.Get(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("error fetching key %s from Redis: %w", key, err)
	}

	excelBytes, err := base64.StdEncoding.DecodeString(encodedExcel)
	if err != nil {
		return nil, fmt.Errorf("error decoding base64 Excel: %w", err)
	}

	return excelBytes, nil
}
