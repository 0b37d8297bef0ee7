package salaryRoutes

import (
	controllers "institute/controllers/salary"
	"institute/middleware"
	validators "institute/validators/salary"

	"github.com/gofiber/fiber/v2"
)

// SetupSalaryRoutes sets up salary payment routes
func SetupSalaryRoutes(app *fiber.App) {
	group := app.Group("/salary")

	group.Post("/", middleware.JWTMiddleware, middleware.InstituteOnly, validators.RecordPayment(), controllers.RecordPayment)
	group.Get("/list", middleware.JWTMiddleware, controllers.ListPayments)
}
