package instituteRoutes

import (
	controllers "institute/controllers/institute"
	"institute/middleware"
	validators "institute/validators/institute"

	"github.com/gofiber/fiber/v2"
)

// SetupInstituteRoutes sets up profile and public directory routes
func SetupInstituteRoutes(app *fiber.App) {
	group := app.Group("/institute")

	group.Get("/profile", middleware.JWTMiddleware, middleware.InstituteOnly, controllers.GetProfile)
	group.Put("/profile", middleware.JWTMiddleware, middleware.InstituteOnly, validators.UpdateProfile(), controllers.UpdateProfile)

	// Public directory
	app.Get("/institutes", controllers.ListInstitutes)
}
