package feesValidator

import (
	"time"

	"institute/middleware"

	"github.com/gofiber/fiber/v2"
)

type FeePaymentRequest struct {
	StudentID uint   `json:"student_id"`
	Amount    uint   `json:"amount"`
	Month     string `json:"month"` // "2006-01"
	Method    string `json:"method"`
}

func RecordPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(FeePaymentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.StudentID == 0 {
			errors["student_id"] = "Student is required!"
		}
		if reqData.Amount == 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}
		if _, err := time.Parse("2006-01", reqData.Month); err != nil {
			errors["month"] = "Month must be in YYYY-MM format!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFeePayment", reqData)
		return c.Next()
	}
}
