package bootstrap

import (
	"context"
	"quiz-service/config"
	"quiz-service/domain"
	"quiz-service/internal/engine"
	"quiz-service/internal/initializer"
)

type RoomEngine interface {
	CreateRoom(ctx context.Context, connID, name string) (domain.RoomSnapshot, error)
	JoinRoom(ctx context.Context, connID, roomID, name string) (domain.RoomSnapshot, error)
	LeaveRoom(ctx context.Context, connID, roomID string) error
	StartGame(ctx context.Context, connID, roomID string) error
	SubmitAnswer(ctx context.Context, connID, roomID, questionID string, choiceIndex int) error
	Disconnect(ctx context.Context, connID string) []string
	Room(roomID string) (domain.RoomSnapshot, error)
	RoomCount() int
	Close()
}

func InitQuestions(config config.Config, repo PostgresRepository) engine.QuestionProvider {
	return initializer.InitQuestionProvider(config, repo)
}

func InitEngine(config config.Config, broadcaster engine.Broadcaster, questions engine.QuestionProvider, opts ...engine.Option) RoomEngine {
	if config.Moderation.Enabled {
		opts = append(opts, engine.WithNameCensor(initializer.InitModeration(config)))
	}
	return initializer.InitEngine(config, broadcaster, questions, opts...)
}
