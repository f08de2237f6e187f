package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"quiz-service/domain"

	"github.com/lib/pq"
)

// NextQuestion picks a random active question. The room id is not used: every
// room draws from the same pool.
func (r *Repository) NextQuestion(ctx context.Context, roomID string) (domain.Question, error) {
	query := `
		SELECT prompt, choices, correct_index, duration_seconds
		FROM questions
		WHERE is_active
		ORDER BY random()
		LIMIT 1
	`
	var (
		q       domain.Question
		choices pq.StringArray
	)
	err := r.db.QueryRowContext(ctx, query).Scan(&q.Text, &choices, &q.CorrectIndex, &q.Duration)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Question{}, fmt.Errorf("%w: question bank is empty", domain.ErrQuestionUnavailable)
		}
		return domain.Question{}, fmt.Errorf("failed to load question: %w", err)
	}
	q.Choices = []string(choices)
	return q, nil
}

// AddQuestion stores q in the bank. A prompt that already exists is left as
// is.
func (r *Repository) AddQuestion(ctx context.Context, q domain.Question, category string) error {
	if err := q.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	query := `
		INSERT INTO questions (prompt, choices, correct_index, duration_seconds, category)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		ON CONFLICT (prompt) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, q.Text, pq.Array(q.Choices), q.CorrectIndex, q.Duration, category); err != nil {
		return fmt.Errorf("failed to add question: %w", err)
	}
	return nil
}

func (r *Repository) CountQuestions(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions WHERE is_active`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return n, nil
}
