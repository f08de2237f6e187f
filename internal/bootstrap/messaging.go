package bootstrap

import (
	"quiz-service/config"
	"quiz-service/internal/broadcast"
	"quiz-service/internal/engine"
	"quiz-service/internal/initializer"

	"go.uber.org/zap"
)

type Broadcast interface {
	engine.Broadcaster
	Close() error
}

// InitRelays connects the optional out-of-process observers.
func InitRelays(config config.Config) []broadcast.Relay {
	var relays []broadcast.Relay
	if config.Redis.Enabled {
		relays = append(relays, initializer.InitRoomRedis(config))
	}
	if config.Kafka.Enabled {
		relays = append(relays, initializer.InitMessaging(config))
	}
	return relays
}

func SetupBroadcast(hub Hub, relays []broadcast.Relay, config config.Config) Broadcast {
	for _, r := range relays {
		zap.L().Info("Room events relayed", zap.String("relay", r.Name()))
	}
	return broadcast.NewFanout(hub, config.Relay.Queue, config.Relay.Timeout, relays...)
}
