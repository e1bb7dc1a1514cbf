package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/unigrade/unigrade-api/internal/config"
	"github.com/unigrade/unigrade-api/internal/utils"
)

func TestHealthCheck(t *testing.T) {
	cfg := config.Config{AppName: "Unigrade API", AppEnv: "test", DatabaseDriver: config.DriverSQLite}
	app := fiber.New()
	app.Get("/health", HealthCheck(cfg))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope utils.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.True(t, envelope.Success)

	payload, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "ok", payload["status"])
	require.Equal(t, "sqlite", payload["database"])
}
