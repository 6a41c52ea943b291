package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyHeader = "Idempotency-Key"
	idempotencyTTL    = 24 * time.Hour
)

// cachedResponse stores the response for idempotent requests.
type cachedResponse struct {
	StatusCode  int             `json:"status_code"`
	Body        json.RawMessage `json:"body"`
	ContentType string          `json:"content_type"`
}

// responseRecorder wraps gin.ResponseWriter to capture the response body.
type responseRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency returns middleware that replays the stored response when
// a mutating request repeats an Idempotency-Key. The payment workflow
// itself records a fresh transaction per successful charge, so this
// header is the caller's only guard against double submission.
func Idempotency(redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		key := c.GetHeader(idempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := "idempotency:" + key

		cached, err := lookupResponse(ctx, redisClient, cacheKey)
		if err != nil && err != redis.Nil {
			// Redis trouble - process the request normally.
			c.Next()
			return
		}

		if cached != nil {
			c.Data(cached.StatusCode, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		recorder := &responseRecorder{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = recorder

		c.Next()

		// 5xx responses are not cached so the caller can retry them.
		if c.Writer.Status() >= 200 && c.Writer.Status() < 500 {
			_ = storeResponse(ctx, redisClient, cacheKey, &cachedResponse{
				StatusCode:  c.Writer.Status(),
				Body:        recorder.body.Bytes(),
				ContentType: c.Writer.Header().Get("Content-Type"),
			})
		}
	}
}

// lookupResponse retrieves a cached response from Redis.
func lookupResponse(ctx context.Context, client *redis.Client, key string) (*cachedResponse, error) {
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var cached cachedResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}

	return &cached, nil
}

// storeResponse stores a response in Redis.
func storeResponse(ctx context.Context, client *redis.Client, key string, response *cachedResponse) error {
	data, err := json.Marshal(response)
	if err != nil {
		return err
	}

	return client.Set(ctx, key, data, idempotencyTTL).Err()
}
