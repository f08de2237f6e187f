package bootstrap

import (
	"quiz-service/domain"
	"quiz-service/internal/initializer"
)

type Hub interface {
	RegisterClient(client *domain.Client)
	UnregisterClient(client *domain.Client)
	SendMessageToClient(client *domain.Client, msg domain.Message) error
	WritePump(client *domain.Client)
	Join(roomID, connID string)
	Leave(roomID, connID string)
	Publish(roomID string, msg domain.Message)
	ClientCount() int
}

func InitWebsocket() Hub {
	return initializer.InitWebsocket()
}
