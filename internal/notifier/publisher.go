package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	statusEventQueueKey = "status_changed_events"
)

// RedisPublisher - реализация Publisher, складывающая события в очередь Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие смены статуса в очередь Redis.
// Доставка подписчикам — best-effort, очередь разбирает DeliveryWorker.
func (p *RedisPublisher) Publish(ctx context.Context, event StatusChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal status event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, statusEventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish status event to Redis: %w", err)
	}
	return nil
}
