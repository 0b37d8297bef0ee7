package salaryController

import (
	"log"
	"time"

	"institute/database"
	"institute/middleware"
	"institute/models"
	validators "institute/validators/salary"

	"github.com/gofiber/fiber/v2"
)

func RecordPayment(c *fiber.Ctx) error {
	instituteId, ok := c.Locals("instituteId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSalaryPayment").(*validators.SalaryPaymentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var trainer models.Trainer
	if err := db.
		Where("id = ? AND institute_id = ? AND is_deleted = ?", reqData.TrainerID, instituteId, false).
		First(&trainer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trainer not found!", nil)
	}

	var existing models.SalaryPayment
	if err := db.
		Where("trainer_id = ? AND month = ? AND is_deleted = ?", reqData.TrainerID, reqData.Month, false).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Salary for this month is already recorded!", nil)
	}

	payment := models.SalaryPayment{
		InstituteID: instituteId,
		TrainerID:   reqData.TrainerID,
		Amount:      reqData.Amount,
		Month:       reqData.Month,
		PaidAt:      time.Now(),
	}

	if err := db.Create(&payment).Error; err != nil {
		log.Printf("Error saving salary payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment recorded successfully!", payment)
}

func ListPayments(c *fiber.Ctx) error {
	instituteId, ok := c.Locals("instituteId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db.
		Where("institute_id = ? AND is_deleted = ?", instituteId, false)

	if trainerId := c.QueryInt("trainer_id"); trainerId > 0 {
		db = db.Where("trainer_id = ?", trainerId)
	}
	if month := c.Query("month"); month != "" {
		db = db.Where("month = ?", month)
	}

	var payments []models.SalaryPayment
	if err := db.Order("paid_at desc").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", fiber.Map{
		"payments": payments,
	})
}
