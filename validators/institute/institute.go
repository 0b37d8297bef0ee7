package instituteValidator

import (
	"strings"

	"institute/middleware"

	"github.com/gofiber/fiber/v2"
)

type ProfileRequest struct {
	Name        string `json:"name"`
	Mobile      string `json:"mobile"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	PinCode     string `json:"pin_code"`
}

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProfileRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
