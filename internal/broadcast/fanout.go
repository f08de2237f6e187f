package broadcast

import (
	"context"
	"quiz-service/domain"
	"quiz-service/internal/engine"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

type relayQueue struct {
	relay   Relay
	events  chan domain.RoomEvent
	dropped atomic.Int64
}

// Fanout delivers to a local broadcaster synchronously and hands a copy of
// every published message to each relay through its own bounded queue. A
// relay that falls behind loses events; it never slows the rooms down.
type Fanout struct {
	local   engine.Broadcaster
	queues  []*relayQueue
	timeout time.Duration
	now     func() time.Time

	closed bool
	mu     sync.RWMutex
	wg     sync.WaitGroup
}

func NewFanout(local engine.Broadcaster, queueSize int, timeout time.Duration, relays ...Relay) *Fanout {
	if queueSize <= 0 {
		queueSize = 1
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	f := &Fanout{local: local, timeout: timeout, now: time.Now}
	for _, r := range relays {
		q := &relayQueue{relay: r, events: make(chan domain.RoomEvent, queueSize)}
		f.queues = append(f.queues, q)
		f.wg.Add(1)
		go f.run(q)
	}
	return f
}

func (f *Fanout) Join(roomID, connID string)  { f.local.Join(roomID, connID) }
func (f *Fanout) Leave(roomID, connID string) { f.local.Leave(roomID, connID) }

func (f *Fanout) Publish(roomID string, msg domain.Message) {
	f.local.Publish(roomID, msg)

	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.closed || len(f.queues) == 0 {
		return
	}

	event := domain.RoomEvent{RoomID: roomID, Type: msg.Type, Content: msg.Content, Timestamp: f.now().UTC()}
	for _, q := range f.queues {
		select {
		case q.events <- event:
		default:
			if n := q.dropped.Add(1); n == 1 || n%100 == 0 {
				zap.L().Warn("relay queue full, dropping event",
					zap.String("relay", q.relay.Name()),
					zap.String("room_id", roomID),
					zap.Int64("dropped", n))
			}
		}
	}
}

// Dropped reports how many events the named relay lost to a full queue.
func (f *Fanout) Dropped(name string) int64 {
	for _, q := range f.queues {
		if q.relay.Name() == name {
			return q.dropped.Load()
		}
	}
	return 0
}

// Close stops accepting events, lets every relay drain its queue and closes
// the relays.
func (f *Fanout) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	for _, q := range f.queues {
		close(q.events)
	}
	f.mu.Unlock()

	f.wg.Wait()

	var firstErr error
	for _, q := range f.queues {
		if err := q.relay.Close(); err != nil {
			zap.L().Error("failed to close relay", zap.String("relay", q.relay.Name()), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (f *Fanout) run(q *relayQueue) {
	defer f.wg.Done()
	for event := range q.events {
		ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
		err := q.relay.Relay(ctx, event)
		cancel()
		if err != nil {
			zap.L().Warn("relay failed",
				zap.String("relay", q.relay.Name()),
				zap.String("room_id", event.RoomID),
				zap.String("type", event.Type),
				zap.Error(err))
		}
	}
}
