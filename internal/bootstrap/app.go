package bootstrap

import (
	"context"
	"quiz-service/config"
	"quiz-service/pkg/graceful"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type App struct {
	config       config.Config
	postgresRepo PostgresRepository
	hub          Hub
	broadcast    Broadcast
	engine       RoomEngine
	fiberApp     *fiber.App
	httpHandlers map[string]interface{}
	wsHandlers   map[string]interface{}
}

func NewApp(config config.Config) *App {
	app := &App{
		config: config,
	}
	app.initDependencies()
	return app
}

func (a *App) initDependencies() {
	if a.config.Question.Source == "postgres" {
		a.postgresRepo = InitDatabase(a.config)
	}
	a.hub = InitWebsocket()
	a.broadcast = SetupBroadcast(a.hub, InitRelays(a.config), a.config)
	a.engine = InitEngine(a.config, a.broadcast, InitQuestions(a.config, a.postgresRepo))
	a.httpHandlers = SetupHTTPHandlers(a.engine)
	a.wsHandlers = SetupWSHandlers(a.config, a.hub, a.engine)
	a.fiberApp = SetupServer(a.config, a.httpHandlers, a.wsHandlers)
}

// Server exposes the fiber app, mainly so tests can serve it on their own
// listener.
func (a *App) Server() *fiber.App {
	return a.fiberApp
}

func (a *App) Start() {
	go func() {
		port := a.config.Server.Port
		if err := a.fiberApp.Listen(":" + port); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
		}
	}()

	zap.L().Info("Server started on port", zap.String("port", a.config.Server.Port))

	defer a.Close()

	timeout := a.config.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	graceful.WaitForShutdown(a.fiberApp, timeout, context.Background())
}

// Close releases everything but the HTTP server: question timers, relays and
// the database.
func (a *App) Close() {
	a.engine.Close()

	if err := a.broadcast.Close(); err != nil {
		zap.L().Error("Failed to close relays", zap.Error(err))
	}

	if a.postgresRepo != nil {
		if err := a.postgresRepo.Close(); err != nil {
			zap.L().Error("Failed to close database", zap.Error(err))
		}
	}
}
