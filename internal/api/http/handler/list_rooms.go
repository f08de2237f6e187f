package handler

import (
	"context"
	httpUsecase "quiz-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type ListRoomsRequest struct {
}

type ListRoomsResponse struct {
	Count int `json:"count"`
}

type ListRoomsHandler struct {
	usecase httpUsecase.CountRoomsUseCase
}

func NewListRoomsHandler(usecase httpUsecase.CountRoomsUseCase) *ListRoomsHandler {
	return &ListRoomsHandler{
		usecase: usecase,
	}
}

func (h *ListRoomsHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *ListRoomsRequest) (*ListRoomsResponse, int, error) {
	status, count, err := h.usecase.Execute(ctx)
	if err != nil {
		return nil, status, err
	}
	return &ListRoomsResponse{Count: count}, status, nil
}
