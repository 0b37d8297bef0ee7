package attendanceController

import (
	"log"
	"time"

	"institute/database"
	"institute/middleware"
	"institute/models"
	validators "institute/validators/attendance"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm/clause"
)

// MarkStudentAttendance records one day's attendance for a set of students.
// Re-marking the same (student, date) overwrites the earlier status.
func MarkStudentAttendance(c *fiber.Ctx) error {
	instituteId, ok := c.Locals("instituteId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAttendance").(*validators.MarkAttendanceRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	date, _ := time.Parse("2006-01-02", reqData.Date)

	markedBy := uint(0)
	if role, _ := c.Locals("role").(string); role == middleware.RoleTrainer {
		if subjectId, ok := c.Locals("subjectId").(uint); ok {
			markedBy = subjectId
		}
	}

	var studentIds []uint
	for _, entry := range reqData.Entries {
		studentIds = append(studentIds, entry.ID)
	}

	var count int64
	if err := database.Database.Db.Model(&models.Student{}).
		Where("institute_id = ? AND id IN ? AND is_deleted = ?", instituteId, studentIds, false).
		Count(&count).Error; err != nil || count != int64(len(studentIds)) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "One or more students not found!", nil)
	}

	var records []models.StudentAttendance
	for _, entry := range reqData.Entries {
		records = append(records, models.StudentAttendance{
			InstituteID: instituteId,
			StudentID:   entry.ID,
			Date:        date,
			Status:      entry.Status,
			MarkedByID:  markedBy,
		})
	}

	if err := database.Database.Db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "marked_by_id"}),
		}).
		Create(&records).Error; err != nil {
		log.Printf("Error saving attendance: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save attendance!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attendance saved successfully!", fiber.Map{
		"marked": len(records),
	})
}

// MarkTrainerAttendance records one day's attendance for trainers.
func MarkTrainerAttendance(c *fiber.Ctx) error {
	instituteId, ok := c.Locals("instituteId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAttendance").(*validators.MarkAttendanceRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	date, _ := time.Parse("2006-01-02", reqData.Date)

	var trainerIds []uint
	for _, entry := range reqData.Entries {
		trainerIds = append(trainerIds, entry.ID)
	}

	var count int64
	if err := database.Database.Db.Model(&models.Trainer{}).
		Where("institute_id = ? AND id IN ? AND is_deleted = ?", instituteId, trainerIds, false).
		Count(&count).Error; err != nil || count != int64(len(trainerIds)) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "One or more trainers not found!", nil)
	}

	var records []models.TrainerAttendance
	for _, entry := range reqData.Entries {
		records = append(records, models.TrainerAttendance{
			InstituteID: instituteId,
			TrainerID:   entry.ID,
			Date:        date,
			Status:      entry.Status,
		})
	}

	if err := database.Database.Db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "trainer_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status"}),
		}).
		Create(&records).Error; err != nil {
		log.Printf("Error saving attendance: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save attendance!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attendance saved successfully!", fiber.Map{
		"marked": len(records),
	})
}

// attendanceWindow resolves the requested range: an exact date, a month, or
// the current month by default.
func attendanceWindow(c *fiber.Ctx) (time.Time, time.Time, bool) {
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		return date, date.AddDate(0, 0, 1), true
	}
	base := time.Now()
	if monthStr := c.Query("month"); monthStr != "" {
		month, err := time.Parse("2006-01", monthStr)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		base = month
	}
	from := now.New(base).BeginningOfMonth()
	return from, from.AddDate(0, 1, 0), true
}

func ListStudentAttendance(c *fiber.Ctx) error {
	instituteId, ok := c.Locals("instituteId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	from, to, ok := attendanceWindow(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid date or month filter!", nil)
	}

	db := database.Database.Db.
		Where("institute_id = ? AND date >= ? AND date < ?", instituteId, from, to)

	if studentId := c.QueryInt("student_id"); studentId > 0 {
		db = db.Where("student_id = ?", studentId)
	}

	var records []models.StudentAttendance
	if err := db.Order("date desc").Find(&records).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attendance!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attendance fetched successfully!", fiber.Map{
		"attendance": records,
	})
}

func ListTrainerAttendance(c *fiber.Ctx) error {
	instituteId, ok := c.Locals("instituteId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	from, to, ok := attendanceWindow(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid date or month filter!", nil)
	}

	db := database.Database.Db.
		Where("institute_id = ? AND date >= ? AND date < ?", instituteId, from, to)

	if trainerId := c.QueryInt("trainer_id"); trainerId > 0 {
		db = db.Where("trainer_id = ?", trainerId)
	}

	var records []models.TrainerAttendance
	if err := db.Order("date desc").Find(&records).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attendance!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attendance fetched successfully!", fiber.Map{
		"attendance": records,
	})
}
