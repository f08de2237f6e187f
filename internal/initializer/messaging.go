package initializer

import (
	"context"
	"quiz-service/config"
	"quiz-service/infra/kafka"
	"time"

	"go.uber.org/zap"
)

func InitMessaging(appConfig config.Config) *kafka.EventRelay {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := kafka.Ping(ctx, appConfig.Kafka.Brokers); err != nil {
		zap.L().Fatal("Kafka connection failed", zap.Error(err))
	}

	relay := kafka.NewEventRelay(kafka.Config{
		Brokers:      appConfig.Kafka.Brokers,
		Topic:        appConfig.Kafka.Topic,
		WriteTimeout: appConfig.Kafka.WriteTimeout,
	})
	zap.L().Info("Kafka relay initialized", zap.String("topic", appConfig.Kafka.Topic), zap.Strings("brokers", appConfig.Kafka.Brokers))
	return relay
}
