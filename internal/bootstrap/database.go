package bootstrap

import (
	"context"
	"quiz-service/config"
	"quiz-service/domain"
	"quiz-service/internal/initializer"
)

type PostgresRepository interface {
	Close() error
	NextQuestion(ctx context.Context, roomID string) (domain.Question, error)
	CountQuestions(ctx context.Context) (int, error)
}

func InitDatabase(config config.Config) PostgresRepository {
	return initializer.InitDatabase(config)
}
