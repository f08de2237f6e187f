package initializer

import (
	quizHub "quiz-service/internal/api/ws/hub"
)

func InitWebsocket() *quizHub.Hub {
	return quizHub.NewHub()
}
