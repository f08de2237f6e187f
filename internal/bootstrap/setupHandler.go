package bootstrap

import (
	"quiz-service/config"
	httpHandler "quiz-service/internal/api/http/handler"
	httpUsecase "quiz-service/internal/api/http/usecase"
	wsHandler "quiz-service/internal/api/ws/handler"
	wsUsecase "quiz-service/internal/api/ws/usecase"
)

func SetupHTTPHandlers(roomEngine RoomEngine) map[string]interface{} {
	getRoomUseCase := httpUsecase.NewGetRoomUseCase(roomEngine)
	getRoomHandler := httpHandler.NewGetRoomHandler(getRoomUseCase)

	countRoomsUseCase := httpUsecase.NewCountRoomsUseCase(roomEngine)
	listRoomsHandler := httpHandler.NewListRoomsHandler(countRoomsUseCase)

	return map[string]interface{}{
		"get-room":   getRoomHandler,
		"list-rooms": listRoomsHandler,
	}
}

func SetupWSHandlers(config config.Config, wsHub Hub, roomEngine RoomEngine) map[string]interface{} {
	intents := wsUsecase.NewIntentUseCase(roomEngine)
	roomConnect := wsUsecase.NewRoomConnectUseCase(wsHub, roomEngine, intents, wsUsecase.SessionConfig{
		SendBuffer:       config.Websocket.SendBuffer,
		IntentsPerSecond: config.Websocket.IntentsPerSecond,
		Burst:            config.Websocket.Burst,
		PongWait:         config.Websocket.PongWait,
		MaxMessageSize:   config.Websocket.MaxMessageSize,
	})

	roomConnectHandler := wsHandler.NewWebSocketRoomHandler(roomConnect)
	return map[string]interface{}{
		"room-connect": roomConnectHandler,
	}
}
