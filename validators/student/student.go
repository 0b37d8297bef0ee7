package studentValidator

import (
	"strings"

	"institute/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type StudentRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	BatchNumber string `json:"batch_number"`
	Category    string `json:"category"`
	MonthlyFee  uint   `json:"monthly_fee"`
}

func SaveStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StudentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.FirstName) == "" {
			errors["first_name"] = "First name is required!"
		}

		if strings.TrimSpace(reqData.BatchNumber) == "" {
			errors["batch_number"] = "Batch number is required!"
		}

		if reqData.Email != "" {
			if err := validate.Var(reqData.Email, "email"); err != nil {
				errors["email"] = "Email is not valid!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStudent", reqData)
		return c.Next()
	}
}
