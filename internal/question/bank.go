package question

import (
	"context"
	"fmt"
	"quiz-service/domain"
	"sync"
)

// Bank cycles through a fixed list of questions. Each room walks the list
// from the start, independently of other rooms.
type Bank struct {
	questions []domain.Question
	cursor    map[string]int
	mu        sync.Mutex
}

// NewBank rejects an empty list or any question that could never be played.
// Durations of zero are allowed; the engine fills in its default.
func NewBank(questions []domain.Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: question bank is empty", domain.ErrInvalidInput)
	}
	for i, q := range questions {
		probe := q
		if probe.Duration <= 0 {
			probe.Duration = 1
		}
		if err := probe.Validate(); err != nil {
			return nil, fmt.Errorf("bank question %d: %w", i, err)
		}
	}
	return &Bank{
		questions: append([]domain.Question(nil), questions...),
		cursor:    make(map[string]int),
	}, nil
}

func (b *Bank) NextQuestion(ctx context.Context, roomID string) (domain.Question, error) {
	if err := ctx.Err(); err != nil {
		return domain.Question{}, err
	}

	b.mu.Lock()
	i := b.cursor[roomID]
	b.cursor[roomID] = (i + 1) % len(b.questions)
	b.mu.Unlock()

	q := b.questions[i]
	q.Choices = append([]string(nil), q.Choices...)
	return q, nil
}

// Forget drops the rotation position of a room.
func (b *Bank) Forget(roomID string) {
	b.mu.Lock()
	delete(b.cursor, roomID)
	b.mu.Unlock()
}

func (b *Bank) Len() int { return len(b.questions) }
