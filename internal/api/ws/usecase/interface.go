package wsUsecase

//go:generate go run go.uber.org/mock/mockgen -source=interface.go -destination=../../../../mocks/mock_ws_usecase.go -package=mocks

import (
	"context"
	"quiz-service/domain"
)

type RoomEngine interface {
	CreateRoom(ctx context.Context, connID, name string) (domain.RoomSnapshot, error)
	JoinRoom(ctx context.Context, connID, roomID, name string) (domain.RoomSnapshot, error)
	LeaveRoom(ctx context.Context, connID, roomID string) error
	StartGame(ctx context.Context, connID, roomID string) error
	SubmitAnswer(ctx context.Context, connID, roomID, questionID string, choiceIndex int) error
	Disconnect(ctx context.Context, connID string) []string
}

type Hub interface {
	RegisterClient(client *domain.Client)
	UnregisterClient(client *domain.Client)
	SendMessageToClient(client *domain.Client, msg domain.Message) error
	WritePump(client *domain.Client)
}

// Limiter is satisfied by *rate.Limiter.
type Limiter interface {
	Allow() bool
}
