package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

const (
	createQuestionsTable = `
		CREATE TABLE IF NOT EXISTS questions (
			id SERIAL PRIMARY KEY,
			prompt TEXT NOT NULL UNIQUE,
			choices TEXT[] NOT NULL CHECK (cardinality(choices) >= 2),
			correct_index INT NOT NULL CHECK (correct_index >= 0),
			duration_seconds INT NOT NULL DEFAULT 10 CHECK (duration_seconds > 0),
			category VARCHAR(50),
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);`

	createIndexes = `
		CREATE INDEX IF NOT EXISTS idx_questions_active ON questions(is_active);
		CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category);`

	insertSampleQuestions = `
		INSERT INTO questions (prompt, choices, correct_index, duration_seconds, category) VALUES
		('Which planet is known as the Red Planet?', ARRAY['Earth','Mars','Jupiter','Venus'], 1, 10, 'Space'),
		('What is the largest ocean on Earth?', ARRAY['Atlantic','Indian','Pacific','Arctic'], 2, 10, 'Geography'),
		('How many sides does a hexagon have?', ARRAY['5','6','7','8'], 1, 8, 'Math'),
		('Which gas do plants absorb from the air?', ARRAY['Oxygen','Nitrogen','Carbon dioxide','Helium'], 2, 10, 'Science'),
		('Who wrote "Romeo and Juliet"?', ARRAY['Dickens','Shakespeare','Tolstoy','Homer'], 1, 12, 'Literature')
		ON CONFLICT (prompt) DO NOTHING;`
)

// initDB creates the question bank schema and seeds it.
func initDB(ctx context.Context, db *sql.DB) error {
	tables := []struct {
		name  string
		query string
	}{
		{"questions", createQuestionsTable},
	}

	for _, table := range tables {
		if _, err := db.ExecContext(ctx, table.query); err != nil {
			return fmt.Errorf("failed to create '%s' table: %w", table.name, err)
		}
		zap.L().Debug("table ready", zap.String("table", table.name))
	}

	if _, err := db.ExecContext(ctx, insertSampleQuestions); err != nil {
		return fmt.Errorf("failed to insert sample questions: %w", err)
	}

	if _, err := db.ExecContext(ctx, createIndexes); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	zap.L().Info("database initialized")
	return nil
}
