package engine_test

import (
	"context"
	"errors"
	"quiz-service/domain"
	"quiz-service/internal/engine"
	"sync"
	"time"
)

type published struct {
	roomID string
	msg    domain.Message
}

// recordingBroadcaster keeps group membership and every published message.
type recordingBroadcaster struct {
	mu      sync.Mutex
	groups  map[string]map[string]bool
	history []published
}

func newRecordingBroadcaster() *recordingBroadcaster {
	return &recordingBroadcaster{groups: make(map[string]map[string]bool)}
}

func (b *recordingBroadcaster) Join(roomID, connID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.groups[roomID] == nil {
		b.groups[roomID] = make(map[string]bool)
	}
	b.groups[roomID][connID] = true
}

func (b *recordingBroadcaster) Leave(roomID, connID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.groups[roomID], connID)
}

func (b *recordingBroadcaster) Publish(roomID string, msg domain.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.history = append(b.history, published{roomID: roomID, msg: msg})
}

func (b *recordingBroadcaster) member(roomID, connID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.groups[roomID][connID]
}

func (b *recordingBroadcaster) messages() []published {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]published(nil), b.history...)
}

func (b *recordingBroadcaster) types() []string {
	var out []string
	for _, p := range b.messages() {
		out = append(out, p.msg.Type)
	}
	return out
}

func (b *recordingBroadcaster) last() published {
	msgs := b.messages()
	return msgs[len(msgs)-1]
}

func (b *recordingBroadcaster) reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.history = nil
}

// manualScheduler never fires on its own; tests fire the armed callbacks.
type manualScheduler struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
	mu      *sync.Mutex
}

func (t *manualTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) engine.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{d: d, f: f, mu: &s.mu}
	s.timers = append(s.timers, t)
	return t
}

func (s *manualScheduler) armed() []*manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*manualTimer(nil), s.timers...)
}

// fire runs the i-th callback as if its deadline passed. force runs it even
// when stopped, which is the race where Stop loses to an already-firing timer.
func (s *manualScheduler) fire(i int, force bool) bool {
	s.mu.Lock()
	t := s.timers[i]
	if (t.stopped && !force) || t.fired {
		s.mu.Unlock()
		return false
	}
	t.fired = true
	s.mu.Unlock()

	t.f()
	return true
}

type fixedQuestions struct {
	question domain.Question
	err      error
	calls    int
	mu       sync.Mutex
}

func (q *fixedQuestions) NextQuestion(ctx context.Context, roomID string) (domain.Question, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.calls++
	if q.err != nil {
		return domain.Question{}, q.err
	}
	return q.question, nil
}

var errProviderDown = errors.New("provider down")

func marsQuestion() domain.Question {
	return domain.Question{
		Text:         "Which planet is known as the Red Planet?",
		Choices:      []string{"Earth", "Mars", "Jupiter", "Venus"},
		CorrectIndex: 1,
		Duration:     10,
	}
}
