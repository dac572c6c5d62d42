package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stadiumdeals/margin-finder/pkg/response"
)

const (
	// IdempotencyKeyHeader is the header name for the idempotency key
	IdempotencyKeyHeader = "X-Idempotency-Key"
	// idempotencyKeyPrefix is the Redis key prefix for idempotency records
	idempotencyKeyPrefix = "idempotency:"
)

// IdempotencyStatus represents the state of an idempotency record
type IdempotencyStatus string

const (
	StatusProcessing IdempotencyStatus = "processing"
	StatusCompleted  IdempotencyStatus = "completed"
)

// IdempotencyRecord stores the state of an idempotent request
type IdempotencyRecord struct {
	Key          string            `json:"key"`
	Status       IdempotencyStatus `json:"status"`
	ResponseCode int               `json:"response_code"`
	ResponseBody string            `json:"response_body"`
	CreatedAt    time.Time         `json:"created_at"`
}

// RedisClient is the subset of redis operations idempotency needs
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Redis RedisClient
	// TTL for completed records (default: 30 minutes)
	TTL time.Duration
	// ProcessingTTL for in-flight records (default: 5 minutes, reconciliation runs are slow)
	ProcessingTTL time.Duration
}

// Idempotency deduplicates trigger requests carrying the same X-Idempotency-Key.
// A completed run's response is replayed; a concurrent duplicate gets 409.
// Requests without a key pass through untouched.
func Idempotency(cfg *IdempotencyConfig) gin.HandlerFunc {
	if cfg.TTL == 0 {
		cfg.TTL = 30 * time.Minute
	}
	if cfg.ProcessingTTL == 0 {
		cfg.ProcessingTTL = 5 * time.Minute
	}

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || cfg.Redis == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		redisKey := idempotencyKeyPrefix + key

		record := IdempotencyRecord{
			Key:       key,
			Status:    StatusProcessing,
			CreatedAt: time.Now(),
		}
		payload, _ := json.Marshal(record)

		acquired, err := cfg.Redis.SetNX(ctx, redisKey, payload, cfg.ProcessingTTL).Result()
		if err != nil {
			// Redis down: let the request through rather than blocking runs
			c.Next()
			return
		}

		if !acquired {
			existing, err := cfg.Redis.Get(ctx, redisKey).Result()
			if err != nil {
				c.AbortWithStatusJSON(http.StatusConflict, response.Conflict("Duplicate request"))
				return
			}
			var prev IdempotencyRecord
			if err := json.Unmarshal([]byte(existing), &prev); err == nil && prev.Status == StatusCompleted {
				c.Header("Content-Type", "application/json")
				c.String(prev.ResponseCode, prev.ResponseBody)
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusConflict, response.Conflict("Request in progress"))
			return
		}

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		status := c.Writer.Status()
		if status >= http.StatusInternalServerError {
			// Do not pin failures, the caller may retry
			cfg.Redis.Del(ctx, redisKey)
			return
		}

		record.Status = StatusCompleted
		record.ResponseCode = status
		record.ResponseBody = writer.body
		payload, _ = json.Marshal(record)
		cfg.Redis.Set(ctx, redisKey, payload, cfg.TTL)
	}
}

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body string
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body += string(b)
	return w.ResponseWriter.Write(b)
}
