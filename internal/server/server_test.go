package server_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"quiz-service/internal/server"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	app := server.NewFiberApp(server.Config{ReadTimeout: time.Second})

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]string
	require.NoError(t, json.Unmarshal(body, &out))
	require.Equal(t, "UP", out["status"])
}

func TestRateLimiterRejectsOverBurst(t *testing.T) {
	app := fiber.New()
	limited := app.Group("/limited", server.NewRateLimiter(server.RateLimitConfig{RequestsPerMinute: 1, Burst: 2}).Middleware())
	limited.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/limited/", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/limited/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestRateLimiterDisabled(t *testing.T) {
	app := fiber.New()
	app.Use(server.NewRateLimiter(server.RateLimitConfig{}).Middleware())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	for i := 0; i < 20; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}
