package timetableValidator

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp() *fiber.App {
	app := fiber.New()
	app.Post("/slot", SaveSlot(), func(c *fiber.Ctx) error {
		reqData := c.Locals("validatedSlot").(*SlotRequest)
		return c.JSON(reqData)
	})
	return app
}

func postSlot(t *testing.T, app *fiber.App, payload interface{}) int {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/slot", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"day":          "Mon",
		"time":         "09:00",
		"category":     "Dance",
		"batch_number": "B1",
		"trainer_id":   1,
		"students":     []uint{1, 2},
	}
}

func TestSaveSlotAcceptsValidPayload(t *testing.T) {
	app := testApp()
	assert.Equal(t, fiber.StatusOK, postSlot(t, app, validPayload()))
}

func TestSaveSlotRejectsUnknownDay(t *testing.T) {
	app := testApp()
	payload := validPayload()
	payload["day"] = "Monday"
	assert.Equal(t, fiber.StatusUnprocessableEntity, postSlot(t, app, payload))
}

func TestSaveSlotRejectsUnknownTime(t *testing.T) {
	app := testApp()
	payload := validPayload()
	payload["time"] = "09:30"
	assert.Equal(t, fiber.StatusUnprocessableEntity, postSlot(t, app, payload))
}

func TestSaveSlotRejectsMissingFields(t *testing.T) {
	app := testApp()

	for _, field := range []string{"category", "batch_number"} {
		payload := validPayload()
		payload[field] = ""
		assert.Equal(t, fiber.StatusUnprocessableEntity, postSlot(t, app, payload), field)
	}

	payload := validPayload()
	payload["trainer_id"] = 0
	assert.Equal(t, fiber.StatusUnprocessableEntity, postSlot(t, app, payload))

	payload = validPayload()
	payload["students"] = []uint{}
	assert.Equal(t, fiber.StatusUnprocessableEntity, postSlot(t, app, payload))
}

func TestSaveSlotRejectsMalformedBody(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("POST", "/slot", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
