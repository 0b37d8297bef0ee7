package main

import (
	"institute/config"
	"institute/database"
	attendanceRoutes "institute/routers/attendanceRoutes"
	authRoutes "institute/routers/authRoutes"
	feesRoutes "institute/routers/feesRoutes"
	instituteRoutes "institute/routers/instituteRoutes"
	salaryRoutes "institute/routers/salaryRoutes"
	studentRoutes "institute/routers/studentRoutes"
	timetableRoutes "institute/routers/timetableRoutes"
	trainerRoutes "institute/routers/trainerRoutes"
	"institute/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	instituteRoutes.SetupInstituteRoutes(app)
	trainerRoutes.SetupTrainerRoutes(app)
	studentRoutes.SetupStudentRoutes(app)
	timetableRoutes.SetupTimetableRoutes(app)
	attendanceRoutes.SetupAttendanceRoutes(app)
	feesRoutes.SetupFeesRoutes(app)
	salaryRoutes.SetupSalaryRoutes(app)

	utils.StartFeeReminderScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
