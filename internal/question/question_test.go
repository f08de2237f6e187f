package question

import (
	"context"
	"quiz-service/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatic_ReturnsIndependentCopies(t *testing.T) {
	req := require.New(t)
	s := NewStatic(SampleQuestion())

	first, err := s.NextQuestion(context.Background(), "ROOM01")
	req.NoError(err)
	first.Choices[0] = "Pluto"

	second, err := s.NextQuestion(context.Background(), "ROOM01")
	req.NoError(err)
	req.Equal("Earth", second.Choices[0])
	req.Equal(1, second.CorrectIndex)
	req.Equal(10, second.Duration)
}

func TestBank_RotatesPerRoom(t *testing.T) {
	req := require.New(t)
	bank, err := NewBank([]domain.Question{
		{Text: "one", Choices: []string{"a", "b"}, CorrectIndex: 0, Duration: 5},
		{Text: "two", Choices: []string{"a", "b"}, CorrectIndex: 1},
	})
	req.NoError(err)
	ctx := context.Background()

	texts := func(roomID string, n int) []string {
		var out []string
		for i := 0; i < n; i++ {
			q, err := bank.NextQuestion(ctx, roomID)
			req.NoError(err)
			out = append(out, q.Text)
		}
		return out
	}

	req.Equal([]string{"one", "two", "one"}, texts("A", 3))
	req.Equal([]string{"one"}, texts("B", 1))

	bank.Forget("A")
	req.Equal([]string{"one"}, texts("A", 1))
}

func TestNewBank_Rejects(t *testing.T) {
	cases := []struct {
		name      string
		questions []domain.Question
		err       error
	}{
		{name: "empty", questions: nil, err: domain.ErrInvalidInput},
		{name: "bad correct index", questions: []domain.Question{{Text: "q", Choices: []string{"a", "b"}, CorrectIndex: 5}}, err: domain.ErrQuestionUnavailable},
		{name: "one choice", questions: []domain.Question{{Text: "q", Choices: []string{"a"}}}, err: domain.ErrQuestionUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBank(tc.questions)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestBank_HonoursCancelledContext(t *testing.T) {
	bank, err := NewBank([]domain.Question{SampleQuestion()})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = bank.NextQuestion(ctx, "A")

	require.ErrorIs(t, err, context.Canceled)
}
