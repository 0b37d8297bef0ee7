package trainerRoutes

import (
	controllers "institute/controllers/trainer"
	"institute/middleware"
	validators "institute/validators/trainer"

	"github.com/gofiber/fiber/v2"
)

// SetupTrainerRoutes sets up trainer management routes
func SetupTrainerRoutes(app *fiber.App) {
	group := app.Group("/trainer")

	group.Post("/", middleware.JWTMiddleware, middleware.InstituteOnly, validators.SaveTrainer(), controllers.CreateTrainer)
	group.Get("/list", middleware.JWTMiddleware, controllers.GetAllTrainers)
	group.Get("/:id", middleware.JWTMiddleware, controllers.GetTrainer)
	group.Put("/:id", middleware.JWTMiddleware, middleware.InstituteOnly, validators.SaveTrainer(), controllers.UpdateTrainer)
	group.Delete("/:id", middleware.JWTMiddleware, middleware.InstituteOnly, controllers.DeleteTrainer)
}
