package initializer

import (
	"quiz-service/config"
	"quiz-service/internal/engine"
	"quiz-service/internal/registry"
)

func InitEngine(appConfig config.Config, broadcaster engine.Broadcaster, questions engine.QuestionProvider, opts ...engine.Option) *engine.RoomEngine {
	var generate registry.CodeGenerator
	if appConfig.Room.CodeAlphabet != "" && appConfig.Room.CodeLength > 0 {
		generate = registry.RandomCode(appConfig.Room.CodeAlphabet, appConfig.Room.CodeLength)
	}
	rooms := registry.NewRoomRegistry(generate)

	cfg := engine.DefaultConfig()
	if appConfig.Room.Award > 0 {
		cfg.Award = appConfig.Room.Award
	}
	if appConfig.Room.DefaultHostName != "" {
		cfg.DefaultHostName = appConfig.Room.DefaultHostName
	}
	if appConfig.Room.DefaultPlayerName != "" {
		cfg.DefaultPlayerName = appConfig.Room.DefaultPlayerName
	}
	if appConfig.Room.MaxNameLength > 0 {
		cfg.MaxNameLength = appConfig.Room.MaxNameLength
	}
	if appConfig.Question.DefaultDuration > 0 {
		cfg.DefaultDuration = appConfig.Question.DefaultDuration
	}
	if appConfig.Question.ProviderTimeout > 0 {
		cfg.ProviderTimeout = appConfig.Question.ProviderTimeout
	}

	return engine.NewRoomEngine(cfg, rooms, broadcaster, questions, opts...)
}
