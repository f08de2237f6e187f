package bootstrap_test

import (
	"context"
	"quiz-service/config"
	"quiz-service/internal/bootstrap"
	"quiz-service/internal/question"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitQuestions_WithoutDatabase(t *testing.T) {
	cases := []struct {
		name   string
		config config.Config
		check  func(t *testing.T, provider any)
	}{
		{
			name:   "static",
			config: config.Config{Question: config.QuestionConfig{Source: "static"}},
			check: func(t *testing.T, provider any) {
				require.IsType(t, &question.Static{}, provider)
			},
		},
		{
			name:   "bank",
			config: testConfig(),
			check: func(t *testing.T, provider any) {
				require.IsType(t, &question.Bank{}, provider)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := bootstrap.InitQuestions(tc.config, nil)

			require.NotNil(t, provider)
			tc.check(t, provider)
			q, err := provider.NextQuestion(context.Background(), "ROOM01")
			require.NoError(t, err)
			require.Equal(t, "Which planet is known as the Red Planet?", q.Text)
		})
	}
}
