package httpUsecase

//go:generate go run go.uber.org/mock/mockgen -source=interface.go -destination=../../../../mocks/mock_http_usecase.go -package=mocks

import "quiz-service/domain"

// RoomQuery is the read side of the room engine.
type RoomQuery interface {
	Room(roomID string) (domain.RoomSnapshot, error)
	RoomCount() int
}
