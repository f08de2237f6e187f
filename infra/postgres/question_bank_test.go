package postgres

import (
	"context"
	"os"
	"quiz-service/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Runs against a real database only when QUIZ_TEST_POSTGRES_DSN is set.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	dsn := os.Getenv("QUIZ_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("QUIZ_TEST_POSTGRES_DSN not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := NewRepository(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestRepository_NextQuestion(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)
	ctx := context.Background()

	n, err := repo.CountQuestions(ctx)
	req.NoError(err)
	req.GreaterOrEqual(n, 5)

	q, err := repo.NextQuestion(ctx, "ROOM01")
	req.NoError(err)
	req.NoError(q.Validate())
}

func TestRepository_AddQuestion(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)
	ctx := context.Background()

	before, err := repo.CountQuestions(ctx)
	req.NoError(err)

	q := domain.Question{Text: "Test prompt " + time.Now().Format(time.RFC3339Nano), Choices: []string{"yes", "no"}, CorrectIndex: 0, Duration: 5}
	req.NoError(repo.AddQuestion(ctx, q, "Test"))
	req.NoError(repo.AddQuestion(ctx, q, "Test"))

	after, err := repo.CountQuestions(ctx)
	req.NoError(err)
	req.Equal(before+1, after)

	err = repo.AddQuestion(ctx, domain.Question{Text: "broken", Choices: []string{"only"}, Duration: 5}, "")
	req.ErrorIs(err, domain.ErrInvalidInput)
}
