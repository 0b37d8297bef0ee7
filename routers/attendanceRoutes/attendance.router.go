package attendanceRoutes

import (
	controllers "institute/controllers/attendance"
	"institute/middleware"
	validators "institute/validators/attendance"

	"github.com/gofiber/fiber/v2"
)

// SetupAttendanceRoutes sets up attendance routes
func SetupAttendanceRoutes(app *fiber.App) {
	group := app.Group("/attendance")

	// Trainers mark their batch's students, institutes mark anyone
	group.Post("/students", middleware.JWTMiddleware, validators.MarkAttendance(), controllers.MarkStudentAttendance)
	group.Post("/trainers", middleware.JWTMiddleware, middleware.InstituteOnly, validators.MarkAttendance(), controllers.MarkTrainerAttendance)
	group.Get("/students", middleware.JWTMiddleware, controllers.ListStudentAttendance)
	group.Get("/trainers", middleware.JWTMiddleware, controllers.ListTrainerAttendance)
}
