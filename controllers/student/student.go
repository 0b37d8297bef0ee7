package studentController

import (
	"log"
	"time"

	"institute/database"
	"institute/middleware"
	"institute/models"
	validators "institute/validators/student"

	"github.com/gofiber/fiber/v2"
)

func CreateStudent(c *fiber.Ctx) error {
	instituteId, ok := c.Locals("instituteId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedStudent").(*validators.StudentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	student := models.Student{
		InstituteID: instituteId,
		FirstName:   reqData.FirstName,
		LastName:    reqData.LastName,
		Email:       reqData.Email,
		Mobile:      reqData.Mobile,
		BatchNumber: reqData.BatchNumber,
		Category:    reqData.Category,
		MonthlyFee:  reqData.MonthlyFee,
		JoinedAt:    time.Now(),
	}

	if err := database.Database.Db.Create(&student).Error; err != nil {
		log.Printf("Error saving student: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Student added successfully!", student)
}

func GetAllStudents(c *fiber.Ctx) error {
	instituteId, ok := c.Locals("instituteId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db.
		Where("institute_id = ? AND is_deleted = ?", instituteId, false)

	// Optional batch filter feeds the slot form's student picker
	if batch := c.Query("batch"); batch != "" {
		db = db.Where("batch_number = ?", batch)
	}

	var students []models.Student
	if err := db.Order("created_at desc").Find(&students).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", fiber.Map{
		"students": students,
	})
}

// GetBatches returns the distinct batch numbers of the institute's active
// students, used to populate the batch dropdown.
func GetBatches(c *fiber.Ctx) error {
	instituteId, ok := c.Locals("instituteId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var batches []string
	if err := database.Database.Db.Model(&models.Student{}).
		Where("institute_id = ? AND is_deleted = ?", instituteId, false).
		Distinct().
		Order("batch_number").
		Pluck("batch_number", &batches).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch batches!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Batches fetched successfully!", fiber.Map{
		"batches": batches,
	})
}

func GetStudent(c *fiber.Ctx) error {
	instituteId, ok := c.Locals("instituteId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	studentId, err := c.ParamsInt("id")
	if err != nil || studentId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	var student models.Student
	if err := database.Database.Db.
		Where("id = ? AND institute_id = ? AND is_deleted = ?", studentId, instituteId, false).
		First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student fetched successfully!", student)
}

func UpdateStudent(c *fiber.Ctx) error {
	instituteId, ok := c.Locals("instituteId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	studentId, err := c.ParamsInt("id")
	if err != nil || studentId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	reqData, ok := c.Locals("validatedStudent").(*validators.StudentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var student models.Student
	if err := db.
		Where("id = ? AND institute_id = ? AND is_deleted = ?", studentId, instituteId, false).
		First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	// Moving a student out of a batch would silently break the invariant
	// that slot members share the slot's batch
	if student.BatchNumber != reqData.BatchNumber {
		var linked int64
		db.Model(&models.SlotStudent{}).
			Where("student_id = ?", student.ID).
			Count(&linked)
		if linked > 0 {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Student is scheduled in classes of the current batch, remove them first!", nil)
		}
	}

	student.FirstName = reqData.FirstName
	student.LastName = reqData.LastName
	student.Email = reqData.Email
	student.Mobile = reqData.Mobile
	student.BatchNumber = reqData.BatchNumber
	student.Category = reqData.Category
	student.MonthlyFee = reqData.MonthlyFee

	if err := db.Save(&student).Error; err != nil {
		log.Printf("Error updating student: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student updated successfully!", student)
}

func DeleteStudent(c *fiber.Ctx) error {
	instituteId, ok := c.Locals("instituteId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	studentId, err := c.ParamsInt("id")
	if err != nil || studentId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	db := database.Database.Db

	var student models.Student
	if err := db.
		Where("id = ? AND institute_id = ? AND is_deleted = ?", studentId, instituteId, false).
		First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	student.IsDeleted = true
	if err := db.Save(&student).Error; err != nil {
		log.Printf("Error deleting student: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete student!", nil)
	}

	// Drop the student from any scheduled classes
	if err := db.Where("student_id = ?", student.ID).Delete(&models.SlotStudent{}).Error; err != nil {
		log.Printf("Error unlinking student from timetable: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student deleted successfully!", nil)
}
