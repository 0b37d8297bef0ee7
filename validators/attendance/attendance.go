package attendanceValidator

import (
	"time"

	"institute/middleware"
	"institute/models"

	"github.com/gofiber/fiber/v2"
)

type AttendanceEntry struct {
	ID     uint   `json:"id"` // student or trainer id
	Status string `json:"status"`
}

type MarkAttendanceRequest struct {
	Date    string            `json:"date"` // "2006-01-02"
	Entries []AttendanceEntry `json:"entries"`
}

func MarkAttendance() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(MarkAttendanceRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if _, err := time.Parse("2006-01-02", reqData.Date); err != nil {
			errors["date"] = "Date must be in YYYY-MM-DD format!"
		}

		if len(reqData.Entries) == 0 {
			errors["entries"] = "At least one entry is required!"
		}
		for _, entry := range reqData.Entries {
			if entry.ID == 0 {
				errors["entries"] = "Every entry needs an id!"
				break
			}
			if entry.Status != models.AttendancePresent && entry.Status != models.AttendanceAbsent {
				errors["entries"] = "Status must be PRESENT or ABSENT!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAttendance", reqData)
		return c.Next()
	}
}
