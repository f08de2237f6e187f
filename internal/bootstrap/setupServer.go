package bootstrap

import (
	"quiz-service/config"
	httpHandler "quiz-service/internal/api/http/handler"
	wsHandler "quiz-service/internal/api/ws/handler"
	"quiz-service/internal/handler"
	"quiz-service/internal/server"

	"github.com/gofiber/fiber/v2"
)

func SetupServer(config config.Config, httpHandlers map[string]interface{}, wsHandlers map[string]interface{}) *fiber.App {

	serverConfig := server.Config{
		Port:         config.Server.Port,
		IdleTimeout:  config.Server.IdleTimeout,
		ReadTimeout:  config.Server.ReadTimeout,
		WriteTimeout: config.Server.WriteTimeout,
		AllowOrigins: config.Server.AllowOrigins,
	}

	app := server.NewFiberApp(serverConfig)

	getRoomHandler := httpHandlers["get-room"].(*httpHandler.GetRoomHandler)
	listRoomsHandler := httpHandlers["list-rooms"].(*httpHandler.ListRoomsHandler)

	limiter := server.NewRateLimiter(server.RateLimitConfig{
		RequestsPerMinute: config.Server.RequestsPerMinute,
		Burst:             config.Server.Burst,
	})
	roomsRoute := app.Group("/rooms", limiter.Middleware())
	roomsRoute.Get("/", handler.HandleWithFiber[httpHandler.ListRoomsRequest, httpHandler.ListRoomsResponse](listRoomsHandler))
	roomsRoute.Get("/:room_id", handler.HandleWithFiber[httpHandler.GetRoomRequest, httpHandler.GetRoomResponse](getRoomHandler))

	roomConnectHandler := wsHandlers["room-connect"].(*wsHandler.WebSocketRoomHandler)
	app.Get("/ws", handler.HandleWithFiberWS[wsHandler.WebSocketRoomRequest](roomConnectHandler)...)

	return app
}
