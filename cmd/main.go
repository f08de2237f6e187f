package main

import (
	"quiz-service/config"
	"quiz-service/internal/bootstrap"
	"quiz-service/log"

	"go.uber.org/zap"
)

func main() {
	appConfig := config.Read()
	defer zap.L().Sync()

	if err := log.SetLevel(appConfig.Log.Level); err != nil {
		zap.L().Warn("Invalid log level, keeping info", zap.String("level", appConfig.Log.Level), zap.Error(err))
	}
	zap.L().Info("app starting...", zap.String("app name", appConfig.App.Name), zap.String("version", appConfig.App.Version))

	app := bootstrap.NewApp(appConfig)

	app.Start()
}
