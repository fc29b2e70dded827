package fiberlog

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run(`default tags check`, func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		cfg := ConfigDefault
		cfg.Logger = logger

		app := fiber.New()
		app.Use(New(cfg))
		app.Get("/requests/:id", func(c *fiber.Ctx) error {
			c.Locals(TagUserID, "agent-1")
			return c.SendStatus(fiber.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/requests/r1", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		entry := hook.LastEntry()
		require.NotNil(t, entry)
		require.Equal(t, logrus.InfoLevel, entry.Level)
		require.Equal(t, "agent-1", entry.Data[TagUserID])
		require.Equal(t, "/requests/r1", entry.Data[TagPath])
		require.Equal(t, fiber.StatusOK, entry.Data[TagStatus])
	})

	t.Run(`error response check`, func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		cfg := ConfigDefault
		cfg.Logger = logger

		app := fiber.New()
		app.Use(New(cfg))
		app.Post("/requests/:id/route-to-ceo", func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusBadRequest)
		})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/requests/r1/route-to-ceo", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		entry := hook.LastEntry()
		require.NotNil(t, entry)
		require.Equal(t, logrus.WarnLevel, entry.Level)
		_, ok := entry.Data[TagUserID]
		require.False(t, ok)
	})
}
