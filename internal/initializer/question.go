package initializer

import (
	"quiz-service/config"
	"quiz-service/domain"
	"quiz-service/internal/engine"
	"quiz-service/internal/question"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// InitQuestionProvider picks the provider named by question.source. The
// postgres source needs repo; the others ignore it.
func InitQuestionProvider(appConfig config.Config, repo engine.QuestionProvider) engine.QuestionProvider {
	switch appConfig.Question.Source {
	case "", "static":
		return question.NewStatic(question.SampleQuestion())
	case "bank":
		questions := lo.Map(appConfig.Question.Bank, func(r config.QuestionRecord, _ int) domain.Question {
			return domain.Question{
				Text:         r.Text,
				Choices:      r.Choices,
				CorrectIndex: r.CorrectIndex,
				Duration:     r.Duration,
			}
		})
		bank, err := question.NewBank(questions)
		if err != nil {
			zap.L().Fatal("Invalid question bank", zap.Error(err))
		}
		zap.L().Info("Question bank loaded", zap.Int("questions", bank.Len()))
		return bank
	case "postgres":
		if repo == nil {
			zap.L().Fatal("Postgres question source selected without a database")
		}
		return repo
	default:
		zap.L().Fatal("Unknown question source", zap.String("source", appConfig.Question.Source))
		return nil
	}
}
