package wsHandler

import (
	"context"
	wsUsecase "quiz-service/internal/api/ws/usecase"

	"github.com/gofiber/contrib/websocket"
)

// WebSocketRoomHandler serves the single quiz websocket endpoint. Rooms are
// chosen per intent, so the upgrade itself carries no parameters.
type WebSocketRoomHandler struct {
	usecase wsUsecase.RoomConnectUseCase
}
type WebSocketRoomRequest struct {
}

func NewWebSocketRoomHandler(usecase wsUsecase.RoomConnectUseCase) *WebSocketRoomHandler {
	return &WebSocketRoomHandler{
		usecase: usecase,
	}
}

func (h *WebSocketRoomHandler) HandleWS(c *websocket.Conn, ctx context.Context, req *WebSocketRoomRequest) {
	h.usecase.Execute(c, ctx)
}
