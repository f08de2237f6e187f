package broadcast

//go:generate go run go.uber.org/mock/mockgen -source=relay.go -destination=../../mocks/mock_relay.go -package=mocks

import (
	"context"
	"quiz-service/domain"
)

// Relay mirrors room events to an external system. Relays are observers only;
// nothing they publish is read back.
type Relay interface {
	Name() string
	Relay(ctx context.Context, event domain.RoomEvent) error
	Close() error
}
