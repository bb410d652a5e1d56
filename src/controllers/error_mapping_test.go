package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/Atuba426/Airtable-assignment/src/models"
	"github.com/Atuba426/Airtable-assignment/src/services/airtable"
	"github.com/Atuba426/Airtable-assignment/src/services/forms"
)

// runErrorHandler mounts the handler on a throwaway app and decodes the
// response into the documented error payload.
func runErrorHandler(t *testing.T, h fiber.Handler) (int, models.ErrorResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/err", h)

	resp, err := app.Test(httptest.NewRequest("GET", "/err", nil))
	assert.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var payload models.ErrorResponse
	assert.NoError(t, json.Unmarshal(body, &payload))
	return resp.StatusCode, payload
}

func TestFormError(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		status, payload := runErrorHandler(t, func(c *fiber.Ctx) error {
			return formError(c, forms.ErrFormNotFound)
		})
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, fiber.StatusNotFound, payload.Status)
		assert.Equal(t, "Form not found", payload.Message)
	})

	t.Run("NotOwner", func(t *testing.T) {
		status, payload := runErrorHandler(t, func(c *fiber.Ctx) error {
			return formError(c, forms.ErrNotOwner)
		})
		assert.Equal(t, fiber.StatusForbidden, status)
		assert.Equal(t, fiber.StatusForbidden, payload.Status)
	})

	// A database outage must not be reported as a missing form.
	t.Run("InfrastructureFailure", func(t *testing.T) {
		status, payload := runErrorHandler(t, func(c *fiber.Ctx) error {
			return formError(c, errors.New("connection reset by peer"))
		})
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, fiber.StatusInternalServerError, payload.Status)
		assert.Equal(t, "connection reset by peer", payload.Message)
	})
}

func TestUpstreamError(t *testing.T) {
	t.Run("ExpiredToken", func(t *testing.T) {
		status, payload := runErrorHandler(t, func(c *fiber.Ctx) error {
			return upstreamError(c, airtable.ErrUnauthorized)
		})
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "Airtable token expired. Please login with Airtable again", payload.Message)
	})

	t.Run("NotFound", func(t *testing.T) {
		status, _ := runErrorHandler(t, func(c *fiber.Ctx) error {
			return upstreamError(c, airtable.ErrNotFound)
		})
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("OtherUpstreamFailure", func(t *testing.T) {
		status, payload := runErrorHandler(t, func(c *fiber.Ctx) error {
			return upstreamError(c, errors.New("airtable request failed: status 500"))
		})
		assert.Equal(t, fiber.StatusBadGateway, status)
		assert.Equal(t, "Airtable request failed", payload.Message)
	})
}
