package timetableController

import (
	"log"

	"institute/database"
	"institute/middleware"
	"institute/models"
	"institute/timetable"
	validators "institute/validators/timetable"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func instituteFromCtx(c *fiber.Ctx) (uint, bool) {
	instituteId, ok := c.Locals("instituteId").(uint)
	if !ok {
		return 0, false
	}
	var institute models.Institute
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", instituteId, false).
		First(&institute).Error; err != nil {
		return 0, false
	}
	return instituteId, true
}

// GetTimetable returns the full weekly schedule plus the day×time grid.
func GetTimetable(c *fiber.Ctx) error {
	instituteId, ok := instituteFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	slots, err := timetable.LoadSlots(database.Database.Db, instituteId)
	if err != nil {
		log.Printf("Error loading timetable: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch timetable!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Timetable fetched successfully!", fiber.Map{
		"days":  timetable.Days,
		"times": timetable.Times,
		"slots": slots,
		"grid":  timetable.GridFor(slots),
	})
}

// conflictResponse renders a double-booking as a 409 with the occupant
// detail the client shows in the form.
func conflictResponse(c *fiber.Ctx, conflict *timetable.Conflict) error {
	return middleware.JsonResponse(c, fiber.StatusConflict, false, conflict.Message(), fiber.Map{
		"conflict": conflict,
	})
}

// resolveTrainer loads the slot's trainer scoped to the institute; the
// trainer name is denormalized onto the slot for grid chips and messages.
func resolveTrainer(instituteId uint, trainerId uint) (*models.Trainer, error) {
	var trainer models.Trainer
	err := database.Database.Db.
		Where("id = ? AND institute_id = ? AND is_deleted = ?", trainerId, instituteId, false).
		First(&trainer).Error
	if err != nil {
		return nil, err
	}
	return &trainer, nil
}

// checkStudentsInBatch verifies every referenced student belongs to the
// slot's batch.
func checkStudentsInBatch(instituteId uint, studentIds []uint, batchNumber string) (bool, error) {
	var count int64
	err := database.Database.Db.Model(&models.Student{}).
		Where("institute_id = ? AND id IN ? AND batch_number = ? AND is_deleted = ?",
			instituteId, studentIds, batchNumber, false).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == int64(len(studentIds)), nil
}

// CreateSlot validates a new class against the current schedule snapshot
// and persists it. The compound unique indexes re-check the invariant at
// write time, so a racing writer gets the same conflict response instead
// of silently double-booking.
func CreateSlot(c *fiber.Ctx) error {
	instituteId, ok := instituteFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	reqData, ok := c.Locals("validatedSlot").(*validators.SlotRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	trainer, err := resolveTrainer(instituteId, reqData.TrainerID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trainer not found!", nil)
	}

	inBatch, err := checkStudentsInBatch(instituteId, reqData.Students, reqData.BatchNumber)
	if err != nil {
		log.Printf("Error checking students: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save class!", nil)
	}
	if !inBatch {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"students": "All students must belong to batch " + reqData.BatchNumber + "!",
		})
	}

	slots, err := timetable.LoadSlots(db, instituteId)
	if err != nil {
		log.Printf("Error loading timetable: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch timetable!", nil)
	}

	cand := timetable.Candidate{
		Day:         reqData.Day,
		Time:        reqData.Time,
		BatchNumber: reqData.BatchNumber,
		TrainerID:   reqData.TrainerID,
	}
	if conflict := timetable.FindConflict(slots, cand); conflict != nil {
		return conflictResponse(c, conflict)
	}

	slot := models.ScheduleSlot{
		InstituteID: instituteId,
		Day:         reqData.Day,
		Time:        reqData.Time,
		Category:    reqData.Category,
		BatchNumber: reqData.BatchNumber,
		TrainerID:   trainer.ID,
		TrainerName: trainer.FirstName,
	}
	for _, studentId := range reqData.Students {
		slot.Students = append(slot.Students, models.SlotStudent{StudentID: studentId})
	}

	if err := timetable.CreateSlot(db, &slot); err != nil {
		if timetable.IsDuplicate(err) {
			return raceConflict(c, db, instituteId, cand)
		}
		log.Printf("Error saving class: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save class!", nil)
	}

	refreshed, err := timetable.LoadSlots(db, instituteId)
	if err != nil {
		log.Printf("Error refreshing timetable: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch timetable!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Class saved successfully!", fiber.Map{
		"slot":  slot,
		"slots": refreshed,
	})
}

// UpdateSlot replaces an existing class wholesale. The slot under edit is
// excluded from the conflict scan so resubmitting unchanged values always
// succeeds.
func UpdateSlot(c *fiber.Ctx) error {
	instituteId, ok := instituteFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	slotId, err := c.ParamsInt("id")
	if err != nil || slotId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid slot id!", nil)
	}

	reqData, ok := c.Locals("validatedSlot").(*validators.SlotRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	trainer, err := resolveTrainer(instituteId, reqData.TrainerID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trainer not found!", nil)
	}

	inBatch, err := checkStudentsInBatch(instituteId, reqData.Students, reqData.BatchNumber)
	if err != nil {
		log.Printf("Error checking students: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class!", nil)
	}
	if !inBatch {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"students": "All students must belong to batch " + reqData.BatchNumber + "!",
		})
	}

	slots, err := timetable.LoadSlots(db, instituteId)
	if err != nil {
		log.Printf("Error loading timetable: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch timetable!", nil)
	}

	cand := timetable.Candidate{
		Day:         reqData.Day,
		Time:        reqData.Time,
		BatchNumber: reqData.BatchNumber,
		TrainerID:   reqData.TrainerID,
		ExcludeID:   uint(slotId),
	}
	if conflict := timetable.FindConflict(slots, cand); conflict != nil {
		return conflictResponse(c, conflict)
	}

	slot := models.ScheduleSlot{
		ID:          uint(slotId),
		InstituteID: instituteId,
		Day:         reqData.Day,
		Time:        reqData.Time,
		Category:    reqData.Category,
		BatchNumber: reqData.BatchNumber,
		TrainerID:   trainer.ID,
		TrainerName: trainer.FirstName,
	}
	for _, studentId := range reqData.Students {
		slot.Students = append(slot.Students, models.SlotStudent{StudentID: studentId})
	}

	if err := timetable.UpdateSlot(db, &slot); err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
		}
		if timetable.IsDuplicate(err) {
			return raceConflict(c, db, instituteId, cand)
		}
		log.Printf("Error updating class: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class!", nil)
	}

	refreshed, err := timetable.LoadSlots(db, instituteId)
	if err != nil {
		log.Printf("Error refreshing timetable: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch timetable!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class updated successfully!", fiber.Map{
		"slots": refreshed,
	})
}

// raceConflict handles a duplicate-key rejection: the snapshot scan passed
// but a concurrent writer filled the cell first. Re-scan the fresh schedule
// for the occupant so the client still gets the detailed message.
func raceConflict(c *fiber.Ctx, db *gorm.DB, instituteId uint, cand timetable.Candidate) error {
	slots, err := timetable.LoadSlots(db, instituteId)
	if err == nil {
		if conflict := timetable.FindConflict(slots, cand); conflict != nil {
			return conflictResponse(c, conflict)
		}
	}
	return middleware.JsonResponse(c, fiber.StatusConflict, false, "Class was just booked by someone else, please reload!", nil)
}

// DeleteSlot removes a class from the schedule.
func DeleteSlot(c *fiber.Ctx) error {
	instituteId, ok := instituteFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	slotId, err := c.ParamsInt("id")
	if err != nil || slotId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid slot id!", nil)
	}

	db := database.Database.Db

	if err := timetable.DeleteSlot(db, instituteId, uint(slotId)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
		}
		log.Printf("Error deleting class: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete class!", nil)
	}

	refreshed, err := timetable.LoadSlots(db, instituteId)
	if err != nil {
		log.Printf("Error refreshing timetable: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch timetable!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class deleted successfully!", fiber.Map{
		"slots": refreshed,
	})
}

// GetTimetableImage renders the weekly grid as a PNG.
func GetTimetableImage(c *fiber.Ctx) error {
	instituteId, ok := instituteFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	slots, err := timetable.LoadSlots(database.Database.Db, instituteId)
	if err != nil {
		log.Printf("Error loading timetable: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch timetable!", nil)
	}

	png, err := timetable.RenderWeekImage(slots)
	if err != nil {
		log.Printf("Error rendering timetable image: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to render timetable!", nil)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// TrainerTimetable returns the weekly classes of one trainer.
func TrainerTimetable(c *fiber.Ctx) error {
	instituteId, ok := instituteFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	trainerId, err := c.ParamsInt("id")
	if err != nil || trainerId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid trainer id!", nil)
	}

	var slots []models.ScheduleSlot
	if err := database.Database.Db.
		Where("institute_id = ? AND trainer_id = ?", instituteId, trainerId).
		Preload("Students").
		Order("id").
		Find(&slots).Error; err != nil {
		log.Printf("Error loading trainer timetable: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch timetable!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Timetable fetched successfully!", fiber.Map{
		"slots": slots,
		"grid":  timetable.GridFor(slots),
	})
}

// StudentTimetable returns the weekly classes a student is scheduled in.
func StudentTimetable(c *fiber.Ctx) error {
	instituteId, ok := instituteFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	studentId, err := c.ParamsInt("id")
	if err != nil || studentId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	var slots []models.ScheduleSlot
	if err := database.Database.Db.
		Joins("JOIN slot_students ON slot_students.slot_id = schedule_slots.id").
		Where("schedule_slots.institute_id = ? AND slot_students.student_id = ?", instituteId, studentId).
		Preload("Students").
		Order("schedule_slots.id").
		Find(&slots).Error; err != nil {
		log.Printf("Error loading student timetable: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch timetable!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Timetable fetched successfully!", fiber.Map{
		"slots": slots,
		"grid":  timetable.GridFor(slots),
	})
}
