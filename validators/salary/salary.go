package salaryValidator

import (
	"time"

	"institute/middleware"

	"github.com/gofiber/fiber/v2"
)

type SalaryPaymentRequest struct {
	TrainerID uint   `json:"trainer_id"`
	Amount    uint   `json:"amount"`
	Month     string `json:"month"` // "2006-01"
}

func RecordPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SalaryPaymentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.TrainerID == 0 {
			errors["trainer_id"] = "Trainer is required!"
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

		c.Locals("validatedSalaryPayment", reqData)
		return c.Next()
	}
}
