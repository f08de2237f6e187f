package domain

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Client is one websocket connection. ID doubles as the player id in every
// room the connection joins.
type Client struct {
	ID        string
	Conn      *websocket.Conn
	Send      chan []byte
	WriteLock sync.Mutex
	Done      chan struct{}
}

func NewClient(id string, conn *websocket.Conn, sendBuffer int) *Client {
	return &Client{
		ID:   id,
		Conn: conn,
		Send: make(chan []byte, sendBuffer),
		Done: make(chan struct{}),
	}
}
