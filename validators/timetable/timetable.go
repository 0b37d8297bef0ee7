package timetableValidator

import (
	"fmt"
	"strings"

	"institute/middleware"
	"institute/timetable"

	"github.com/gofiber/fiber/v2"
)

// SlotRequest is the create/update payload for a scheduled class. Updates
// are full replacements, so the same payload serves both.
type SlotRequest struct {
	Day         string `json:"day"`
	Time        string `json:"time"`
	Category    string `json:"category"`
	BatchNumber string `json:"batch_number"`
	TrainerID   uint   `json:"trainer_id"`
	Students    []uint `json:"students"`
}

func SaveSlot() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SlotRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !timetable.ValidDay(reqData.Day) {
			errors["day"] = fmt.Sprintf("Day must be one of %s!", strings.Join(timetable.Days, ", "))
		}

		if !timetable.ValidTime(reqData.Time) {
			errors["time"] = fmt.Sprintf("Time must be one of %s!", strings.Join(timetable.Times, ", "))
		}

		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		}

		if strings.TrimSpace(reqData.BatchNumber) == "" {
			errors["batch_number"] = "Batch number is required!"
		}

		if reqData.TrainerID == 0 {
			errors["trainer_id"] = "Trainer is required!"
		}

		if len(reqData.Students) == 0 {
			errors["students"] = "At least one student is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSlot", reqData)
		return c.Next()
	}
}
