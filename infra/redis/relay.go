package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"quiz-service/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Close() error
}

// RoomRelay publishes every room event to the pub/sub channel of its room,
// for dashboards and spectators running outside this process.
type RoomRelay struct {
	client publisher
	prefix string
}

func NewRoomRelay(client *redis.Client, channelPrefix string) *RoomRelay {
	return newRoomRelay(client, channelPrefix)
}

func newRoomRelay(client publisher, channelPrefix string) *RoomRelay {
	return &RoomRelay{client: client, prefix: channelPrefix}
}

// Connect opens a client and checks it answers.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	zap.L().Info("connected to Redis", zap.String("addr", addr), zap.Int("db", db))
	return rdb, nil
}

func (r *RoomRelay) Name() string { return "redis" }

func (r *RoomRelay) Channel(roomID string) string {
	return r.prefix + roomID
}

func (r *RoomRelay) Relay(ctx context.Context, event domain.RoomEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal room event: %w", err)
	}

	receivers, err := r.client.Publish(ctx, r.Channel(event.RoomID), payload).Result()
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", r.Channel(event.RoomID), err)
	}
	zap.L().Debug("room event published to redis",
		zap.String("room_id", event.RoomID),
		zap.String("type", event.Type),
		zap.Int64("receivers", receivers))
	return nil
}

func (r *RoomRelay) Close() error {
	return r.client.Close()
}
