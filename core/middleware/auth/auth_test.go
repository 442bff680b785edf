package auth_test

import (
	"net/http/httptest"
	"testing"

	"pantry-pal/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: apiKey}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuth_DisabledWhenKeyEmpty(t *testing.T) {
	app := setupApp("")

	req := httptest.NewRequest("GET", "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAuth_RejectsMissingKey(t *testing.T) {
	app := setupApp("secret")

	req := httptest.NewRequest("GET", "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuth_RejectsWrongKey(t *testing.T) {
	app := setupApp("secret")

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(auth.HeaderName, "wrong")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuth_AcceptsValidKey(t *testing.T) {
	app := setupApp("secret")

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(auth.HeaderName, "secret")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
