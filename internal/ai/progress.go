package ai

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"prepdeck-backend/internal/models"
)

// ProgressChannel is the Redis pub/sub channel the WebSocket hub subscribes
// to for generation progress.
const ProgressChannel = "generation_updates"

// RedisProgressPublisher forwards workflow step updates over Redis pub/sub.
type RedisProgressPublisher struct {
	rdb *redis.Client
}

func NewRedisProgressPublisher(rdb *redis.Client) *RedisProgressPublisher {
	return &RedisProgressPublisher{rdb: rdb}
}

func (p *RedisProgressPublisher) Publish(ctx context.Context, update models.ProgressUpdate) {
	data, _ := json.Marshal(models.WSMessage{Type: "generation_progress", Payload: update})
	p.rdb.Publish(ctx, ProgressChannel, string(data))
}
