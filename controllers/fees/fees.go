package feesController

import (
	"log"
	"time"

	"institute/database"
	"institute/middleware"
	"institute/models"
	validators "institute/validators/fees"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RecordPayment stores a fee payment with a generated receipt number.
func RecordPayment(c *fiber.Ctx) error {
	instituteId, ok := c.Locals("instituteId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedFeePayment").(*validators.FeePaymentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var student models.Student
	if err := db.
		Where("id = ? AND institute_id = ? AND is_deleted = ?", reqData.StudentID, instituteId, false).
		First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	// One payment per student per month
	var existing models.FeePayment
	if err := db.
		Where("student_id = ? AND month = ? AND is_deleted = ?", reqData.StudentID, reqData.Month, false).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Fee for this month is already recorded!", nil)
	}

	method := reqData.Method
	if method == "" {
		method = "CASH"
	}

	payment := models.FeePayment{
		InstituteID: instituteId,
		StudentID:   reqData.StudentID,
		Amount:      reqData.Amount,
		Month:       reqData.Month,
		Method:      method,
		ReceiptNo:   uuid.NewString(),
		PaidAt:      time.Now(),
	}

	if err := db.Create(&payment).Error; err != nil {
		log.Printf("Error saving fee payment: %v", err)
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

	if studentId := c.QueryInt("student_id"); studentId > 0 {
		db = db.Where("student_id = ?", studentId)
	}
	if month := c.Query("month"); month != "" {
		db = db.Where("month = ?", month)
	}

	var payments []models.FeePayment
	if err := db.Order("paid_at desc").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", fiber.Map{
		"payments": payments,
	})
}

// PendingFees lists active students without a recorded payment for the
// month (current month by default).
func PendingFees(c *fiber.Ctx) error {
	instituteId, ok := c.Locals("instituteId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	month := c.Query("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	} else if _, err := time.Parse("2006-01", month); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Month must be in YYYY-MM format!", nil)
	}

	db := database.Database.Db

	paid := db.Model(&models.FeePayment{}).
		Select("student_id").
		Where("institute_id = ? AND month = ? AND is_deleted = ?", instituteId, month, false)

	var students []models.Student
	if err := db.
		Where("institute_id = ? AND is_deleted = ?", instituteId, false).
		Where("id NOT IN (?)", paid).
		Order("batch_number, first_name").
		Find(&students).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending fees!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending fees fetched successfully!", fiber.Map{
		"month":    month,
		"students": students,
	})
}
