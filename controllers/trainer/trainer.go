package trainerController

import (
	"log"

	"institute/config"
	"institute/database"
	"institute/middleware"
	"institute/models"
	validators "institute/validators/trainer"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func CreateTrainer(c *fiber.Ctx) error {
	instituteId, ok := c.Locals("instituteId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedTrainer").(*validators.TrainerRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	trainer := models.Trainer{
		InstituteID:    instituteId,
		FirstName:      reqData.FirstName,
		LastName:       reqData.LastName,
		Email:          reqData.Email,
		Mobile:         reqData.Mobile,
		Specialization: reqData.Specialization,
		MonthlySalary:  reqData.MonthlySalary,
	}

	if reqData.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}
		trainer.Password = string(hashedPassword)
	}

	if err := database.Database.Db.Create(&trainer).Error; err != nil {
		log.Printf("Error saving trainer: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add trainer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Trainer added successfully!", trainer)
}

func GetAllTrainers(c *fiber.Ctx) error {
	instituteId, ok := c.Locals("instituteId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var trainers []models.Trainer
	if err := database.Database.Db.
		Where("institute_id = ? AND is_deleted = ?", instituteId, false).
		Order("created_at desc").
		Find(&trainers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch trainers!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainers fetched successfully!", fiber.Map{
		"trainers": trainers,
	})
}

func GetTrainer(c *fiber.Ctx) error {
	instituteId, ok := c.Locals("instituteId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	trainerId, err := c.ParamsInt("id")
	if err != nil || trainerId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid trainer id!", nil)
	}

	var trainer models.Trainer
	if err := database.Database.Db.
		Where("id = ? AND institute_id = ? AND is_deleted = ?", trainerId, instituteId, false).
		First(&trainer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trainer not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainer fetched successfully!", trainer)
}

func UpdateTrainer(c *fiber.Ctx) error {
	instituteId, ok := c.Locals("instituteId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	trainerId, err := c.ParamsInt("id")
	if err != nil || trainerId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid trainer id!", nil)
	}

	reqData, ok := c.Locals("validatedTrainer").(*validators.TrainerRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var trainer models.Trainer
	db := database.Database.Db
	if err := db.
		Where("id = ? AND institute_id = ? AND is_deleted = ?", trainerId, instituteId, false).
		First(&trainer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trainer not found!", nil)
	}

	trainer.FirstName = reqData.FirstName
	trainer.LastName = reqData.LastName
	trainer.Email = reqData.Email
	trainer.Mobile = reqData.Mobile
	trainer.Specialization = reqData.Specialization
	trainer.MonthlySalary = reqData.MonthlySalary

	if reqData.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}
		trainer.Password = string(hashedPassword)
	}

	if err := db.Save(&trainer).Error; err != nil {
		log.Printf("Error updating trainer: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update trainer!", nil)
	}

	// Keep the denormalized trainer name on scheduled classes in sync
	if err := db.Model(&models.ScheduleSlot{}).
		Where("institute_id = ? AND trainer_id = ?", instituteId, trainer.ID).
		Update("trainer_name", trainer.FirstName).Error; err != nil {
		log.Printf("Error syncing trainer name on timetable: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainer updated successfully!", trainer)
}

func DeleteTrainer(c *fiber.Ctx) error {
	instituteId, ok := c.Locals("instituteId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	trainerId, err := c.ParamsInt("id")
	if err != nil || trainerId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid trainer id!", nil)
	}

	var trainer models.Trainer
	if err := database.Database.Db.
		Where("id = ? AND institute_id = ? AND is_deleted = ?", trainerId, instituteId, false).
		First(&trainer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trainer not found!", nil)
	}

	// A trainer with scheduled classes keeps the timetable honest; remove
	// the classes first
	var slotCount int64
	database.Database.Db.Model(&models.ScheduleSlot{}).
		Where("institute_id = ? AND trainer_id = ?", instituteId, trainer.ID).
		Count(&slotCount)
	if slotCount > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Trainer has scheduled classes, remove them first!", nil)
	}

	trainer.IsDeleted = true
	if err := database.Database.Db.Save(&trainer).Error; err != nil {
		log.Printf("Error deleting trainer: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete trainer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainer deleted successfully!", nil)
}
