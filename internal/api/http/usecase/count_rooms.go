package httpUsecase

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type CountRoomsUseCase interface {
	Execute(ctx context.Context) (int, int, error)
}

type countRoomsUseCase struct {
	rooms RoomQuery
}

func NewCountRoomsUseCase(rooms RoomQuery) CountRoomsUseCase {
	return &countRoomsUseCase{rooms: rooms}
}

func (u *countRoomsUseCase) Execute(ctx context.Context) (int, int, error) {
	return fiber.StatusOK, u.rooms.RoomCount(), nil
}
