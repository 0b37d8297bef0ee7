package timetableRoutes

import (
	controllers "institute/controllers/timetable"
	"institute/middleware"
	validators "institute/validators/timetable"

	"github.com/gofiber/fiber/v2"
)

// SetupTimetableRoutes sets up the weekly scheduling grid routes
func SetupTimetableRoutes(app *fiber.App) {
	group := app.Group("/timetable")

	group.Get("/", middleware.JWTMiddleware, controllers.GetTimetable)
	group.Get("/image", middleware.JWTMiddleware, controllers.GetTimetableImage)
	group.Get("/trainer/:id", middleware.JWTMiddleware, controllers.TrainerTimetable)
	group.Get("/student/:id", middleware.JWTMiddleware, controllers.StudentTimetable)

	// Mutations are institute-only
	group.Post("/", middleware.JWTMiddleware, middleware.InstituteOnly, validators.SaveSlot(), controllers.CreateSlot)
	group.Put("/:id", middleware.JWTMiddleware, middleware.InstituteOnly, validators.SaveSlot(), controllers.UpdateSlot)
	group.Delete("/:id", middleware.JWTMiddleware, middleware.InstituteOnly, controllers.DeleteSlot)
}
