package authRoutes

import (
	controllers "institute/controllers/auth"
	validators "institute/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up signup and login routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", validators.Signup(), controllers.Signup)
	authGroup.Post("/login", validators.Login(), controllers.Login)
	authGroup.Post("/trainer/login", validators.Login(), controllers.TrainerLogin)
}
