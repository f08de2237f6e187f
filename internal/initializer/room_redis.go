package initializer

import (
	"context"
	"fmt"
	"quiz-service/config"
	"quiz-service/infra/redis"
	"time"

	"go.uber.org/zap"
)

func InitRoomRedis(appConfig config.Config) *redis.RoomRelay {
	address := fmt.Sprintf("%s:%s", appConfig.Redis.Host, appConfig.Redis.Port)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := redis.Connect(ctx, address, appConfig.Redis.Password, appConfig.Redis.DB)
	if err != nil {
		zap.L().Fatal("Redis connection failed", zap.Error(err))
	}
	return redis.NewRoomRelay(client, appConfig.Redis.ChannelPrefix)
}
