package engine

//go:generate go run go.uber.org/mock/mockgen -source=interface.go -destination=../../mocks/mock_engine.go -package=mocks

import (
	"context"
	"quiz-service/domain"
	"time"
)

// Broadcaster delivers room events to every connection in a room's group.
// Implementations must not block: the engine calls them while holding the
// room lock.
type Broadcaster interface {
	Join(roomID, connID string)
	Leave(roomID, connID string)
	Publish(roomID string, msg domain.Message)
}

// QuestionProvider hands out the next question for a room. The returned
// question's ID is ignored; the engine assigns a fresh one per activation.
type QuestionProvider interface {
	NextQuestion(ctx context.Context, roomID string) (domain.Question, error)
}

// RoomForgetter is implemented by providers that keep per-room state. The
// engine calls Forget once a room is destroyed.
type RoomForgetter interface {
	Forget(roomID string)
}

type Timer interface {
	Stop() bool
}

type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type NameCensor interface {
	Censor(original string) string
}
