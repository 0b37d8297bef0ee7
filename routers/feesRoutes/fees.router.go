package feesRoutes

import (
	controllers "institute/controllers/fees"
	"institute/middleware"
	validators "institute/validators/fees"

	"github.com/gofiber/fiber/v2"
)

// SetupFeesRoutes sets up fee payment routes
func SetupFeesRoutes(app *fiber.App) {
	group := app.Group("/fees")

	group.Post("/", middleware.JWTMiddleware, middleware.InstituteOnly, validators.RecordPayment(), controllers.RecordPayment)
	group.Get("/list", middleware.JWTMiddleware, controllers.ListPayments)
	group.Get("/pending", middleware.JWTMiddleware, controllers.PendingFees)
}
