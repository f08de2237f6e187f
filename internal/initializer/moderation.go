package initializer

import (
	"quiz-service/config"
	"quiz-service/internal/moderation"
	"unicode/utf8"

	"go.uber.org/zap"
)

func InitModeration(appConfig config.Config) *moderation.NameFilter {
	replacement, _ := utf8.DecodeRuneInString(appConfig.Moderation.Replacement)
	if replacement == utf8.RuneError {
		replacement = '*'
	}

	filter, err := moderation.NewNameFilter(appConfig.Moderation.Words, replacement)
	if err != nil {
		zap.L().Fatal("Failed to build name filter", zap.Error(err))
	}
	zap.L().Info("Name moderation enabled", zap.Int("words", len(appConfig.Moderation.Words)))
	return filter
}
