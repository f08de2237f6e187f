package hub

import (
	"encoding/json"
	"fmt"
	"quiz-service/domain"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	PongWait       = 60 * time.Second
	pingPeriod     = (PongWait * 9) / 10
	MaxMessageSize = 4096
)

// Hub tracks live websocket clients and which rooms they listen to. It is the
// local Broadcaster of the engine: every send is non-blocking, a client whose
// buffer is full misses the frame.
type Hub struct {
	clients map[string]*domain.Client
	rooms   map[string]map[string]struct{}
	mutex   sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*domain.Client),
		rooms:   make(map[string]map[string]struct{}),
	}
}

// RegisterClient makes the client addressable. A previous client with the
// same id is closed and replaced.
func (h *Hub) RegisterClient(client *domain.Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if existing, ok := h.clients[client.ID]; ok && existing != client {
		zap.L().Warn("client id already connected, closing old connection", zap.String("conn_id", client.ID))
		close(existing.Send)
	}
	h.clients[client.ID] = client
	zap.L().Debug("client registered", zap.String("conn_id", client.ID), zap.Int("clients", len(h.clients)))
}

// UnregisterClient drops the client from every room and closes its send
// channel, which stops its write pump. Safe to call more than once.
func (h *Hub) UnregisterClient(client *domain.Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if current, ok := h.clients[client.ID]; !ok || current != client {
		return
	}
	delete(h.clients, client.ID)

	for roomID, members := range h.rooms {
		if _, ok := members[client.ID]; !ok {
			continue
		}
		delete(members, client.ID)
		if len(members) == 0 {
			delete(h.rooms, roomID)
		}
	}
	close(client.Send)
	zap.L().Debug("client unregistered", zap.String("conn_id", client.ID), zap.Int("clients", len(h.clients)))
}

func (h *Hub) Join(roomID, connID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[connID]; !ok {
		zap.L().Debug("join for unknown connection ignored", zap.String("room_id", roomID), zap.String("conn_id", connID))
		return
	}
	members, ok := h.rooms[roomID]
	if !ok {
		members = make(map[string]struct{})
		h.rooms[roomID] = members
	}
	members[connID] = struct{}{}
}

func (h *Hub) Leave(roomID, connID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	members, ok := h.rooms[roomID]
	if !ok {
		return
	}
	delete(members, connID)
	if len(members) == 0 {
		delete(h.rooms, roomID)
	}
}

func (h *Hub) Publish(roomID string, msg domain.Message) {
	messageBytes, err := json.Marshal(msg)
	if err != nil {
		zap.L().Error("failed to marshal broadcast", zap.String("room_id", roomID), zap.String("type", msg.Type), zap.Error(err))
		return
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for connID := range h.rooms[roomID] {
		client, ok := h.clients[connID]
		if !ok {
			continue
		}
		select {
		case client.Send <- messageBytes:
		default:
			zap.L().Warn("send buffer full, dropping broadcast",
				zap.String("conn_id", connID),
				zap.String("room_id", roomID),
				zap.String("type", msg.Type))
		}
	}
}

// SendMessageToClient queues msg for a single client.
func (h *Hub) SendMessageToClient(client *domain.Client, msg domain.Message) error {
	messageBytes, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()

	if current, ok := h.clients[client.ID]; !ok || current != client {
		return fmt.Errorf("client %s is not connected", client.ID)
	}
	select {
	case client.Send <- messageBytes:
		return nil
	default:
		zap.L().Warn("send buffer full, dropping message", zap.String("conn_id", client.ID), zap.String("type", msg.Type))
		return fmt.Errorf("client %s send buffer is full", client.ID)
	}
}

func (h *Hub) GetRoomClientCount(roomID string) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.rooms[roomID])
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// WritePump drains the client's send channel onto the socket and pings it
// periodically. It returns when the channel is closed or a write fails, and
// closes client.Done on the way out.
func (h *Hub) WritePump(client *domain.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
		close(client.Done)
	}()

	for {
		select {
		case msg, ok := <-client.Send:
			client.WriteLock.Lock()
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				client.WriteLock.Unlock()
				return
			}
			err := client.Conn.WriteMessage(websocket.TextMessage, msg)
			client.WriteLock.Unlock()
			if err != nil {
				zap.L().Debug("websocket write failed", zap.String("conn_id", client.ID), zap.Error(err))
				return
			}

		case <-ticker.C:
			client.WriteLock.Lock()
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := client.Conn.WriteMessage(websocket.PingMessage, nil)
			client.WriteLock.Unlock()
			if err != nil {
				return
			}
		}
	}
}
