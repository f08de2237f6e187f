package httpUsecase

import (
	"context"
	"errors"
	"quiz-service/domain"

	"github.com/gofiber/fiber/v2"
)

var errRoomNotFound = errors.New("Room not found")

type GetRoomUseCase interface {
	Execute(ctx context.Context, roomID string) (int, *domain.RoomSnapshot, error)
}

type getRoomUseCase struct {
	rooms RoomQuery
}

func NewGetRoomUseCase(rooms RoomQuery) GetRoomUseCase {
	return &getRoomUseCase{rooms: rooms}
}

func (u *getRoomUseCase) Execute(ctx context.Context, roomID string) (int, *domain.RoomSnapshot, error) {
	snapshot, err := u.rooms.Room(roomID)
	if errors.Is(err, domain.ErrRoomNotFound) {
		return fiber.StatusNotFound, nil, errRoomNotFound
	}
	if err != nil {
		return fiber.StatusInternalServerError, nil, err
	}
	return fiber.StatusOK, &snapshot, nil
}
