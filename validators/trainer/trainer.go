package trainerValidator

import (
	"strings"

	"institute/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type TrainerRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Mobile         string `json:"mobile"`
	Specialization string `json:"specialization"`
	MonthlySalary  uint   `json:"monthly_salary"`
	Password       string `json:"password"`
}

func SaveTrainer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TrainerRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.FirstName) == "" {
			errors["first_name"] = "First name is required!"
		}

		if reqData.Email != "" {
			if err := validate.Var(reqData.Email, "email"); err != nil {
				errors["email"] = "Email is not valid!"
			}
		}

		// A password enables trainer login and needs an email to log in with
		if reqData.Password != "" {
			if len(reqData.Password) < 8 {
				errors["password"] = "Password must be at least 8 characters long!"
			}
			if strings.TrimSpace(reqData.Email) == "" {
				errors["email"] = "Email is required when a password is set!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTrainer", reqData)
		return c.Next()
	}
}
