package question

import (
	"context"
	"quiz-service/domain"
)

// SampleQuestion is the round served when no bank is configured.
func SampleQuestion() domain.Question {
	return domain.Question{
		Text:         "Which planet is known as the Red Planet?",
		Choices:      []string{"Earth", "Mars", "Jupiter", "Venus"},
		CorrectIndex: 1,
		Duration:     10,
	}
}

// Static always hands out the same question.
type Static struct {
	question domain.Question
}

func NewStatic(q domain.Question) *Static {
	return &Static{question: q}
}

func (s *Static) NextQuestion(ctx context.Context, roomID string) (domain.Question, error) {
	q := s.question
	q.Choices = append([]string(nil), s.question.Choices...)
	return q, nil
}
