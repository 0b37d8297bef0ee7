package studentRoutes

import (
	controllers "institute/controllers/student"
	"institute/middleware"
	validators "institute/validators/student"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentRoutes sets up student management routes
func SetupStudentRoutes(app *fiber.App) {
	group := app.Group("/student")

	group.Post("/", middleware.JWTMiddleware, middleware.InstituteOnly, validators.SaveStudent(), controllers.CreateStudent)
	group.Get("/list", middleware.JWTMiddleware, controllers.GetAllStudents)
	group.Get("/batches", middleware.JWTMiddleware, controllers.GetBatches)
	group.Get("/:id", middleware.JWTMiddleware, controllers.GetStudent)
	group.Put("/:id", middleware.JWTMiddleware, middleware.InstituteOnly, validators.SaveStudent(), controllers.UpdateStudent)
	group.Delete("/:id", middleware.JWTMiddleware, middleware.InstituteOnly, controllers.DeleteStudent)
}
