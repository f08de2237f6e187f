package wsUsecase

import (
	"context"
	"quiz-service/domain"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type SessionConfig struct {
	SendBuffer       int
	IntentsPerSecond float64
	Burst            int
	PongWait         time.Duration
	MaxMessageSize   int64
}

// RoomConnectUseCase runs one websocket session from upgrade to close.
type RoomConnectUseCase interface {
	Execute(c *websocket.Conn, ctx context.Context)
}

type roomConnectUseCase struct {
	hub     Hub
	engine  RoomEngine
	intents IntentUseCase
	cfg     SessionConfig
}

func NewRoomConnectUseCase(hub Hub, engine RoomEngine, intents IntentUseCase, cfg SessionConfig) RoomConnectUseCase {
	if cfg.PongWait <= 0 {
		cfg.PongWait = 60 * time.Second
	}
	if cfg.SendBuffer <= 0 {
		cfg.SendBuffer = 256
	}
	return &roomConnectUseCase{
		hub:     hub,
		engine:  engine,
		intents: intents,
		cfg:     cfg,
	}
}

func (u *roomConnectUseCase) Execute(c *websocket.Conn, ctx context.Context) {
	client := domain.NewClient(uuid.NewString(), c, u.cfg.SendBuffer)
	u.hub.RegisterClient(client)
	go u.hub.WritePump(client)

	logger := zap.L().With(zap.String("conn_id", client.ID))
	logger.Info("client connected", zap.String("remote", c.RemoteAddr().String()))

	defer func() {
		rooms := u.engine.Disconnect(ctx, client.ID)
		u.hub.UnregisterClient(client)
		// The conn goes back to fiber's pool once we return; the write pump
		// must be done with it first.
		<-client.Done
		logger.Info("client disconnected", zap.Strings("rooms", rooms))
	}()

	if err := u.hub.SendMessageToClient(client, domain.NewConnected(client.ID)); err != nil {
		logger.Warn("failed to greet client", zap.Error(err))
		return
	}

	var limiter Limiter
	if u.cfg.IntentsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(u.cfg.IntentsPerSecond), u.cfg.Burst)
	}

	if u.cfg.MaxMessageSize > 0 {
		c.SetReadLimit(u.cfg.MaxMessageSize)
	}
	c.SetReadDeadline(time.Now().Add(u.cfg.PongWait))
	c.SetPongHandler(func(string) error {
		return c.SetReadDeadline(time.Now().Add(u.cfg.PongWait))
	})

	for {
		messageType, payload, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("websocket read error", zap.Error(err))
			}
			return
		}
		if messageType != websocket.TextMessage && messageType != websocket.BinaryMessage {
			continue
		}
		// Any frame proves the peer is alive.
		c.SetReadDeadline(time.Now().Add(u.cfg.PongWait))

		ack := u.intents.Execute(ctx, client.ID, payload, limiter)
		if err := u.hub.SendMessageToClient(client, ack); err != nil {
			logger.Warn("failed to deliver ack", zap.Error(err))
		}
	}
}
