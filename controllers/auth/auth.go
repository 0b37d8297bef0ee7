package authController

import (
	"log"

	"institute/config"
	"institute/database"
	"institute/middleware"
	"institute/models"
	validators "institute/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Signup registers a new institute account.
func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*validators.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.Institute{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newInstitute := models.Institute{
		Name:        reqData.Name,
		Email:       reqData.Email,
		Password:    string(hashedPassword),
		Mobile:      reqData.Mobile,
		Category:    reqData.Category,
		Description: reqData.Description,
		Address:     reqData.Address,
		City:        reqData.City,
		State:       reqData.State,
		PinCode:     reqData.PinCode,
	}

	if err := db.Create(&newInstitute).Error; err != nil {
		log.Printf("Error saving institute to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup institute!", nil)
	}

	newInstitute.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Institute registered successfully.", newInstitute)
}

// Login authenticates an institute account and returns a JWT.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*validators.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var institute models.Institute
	if err := database.Database.Db.
		Where("email = ? AND is_deleted = ?", reqData.Email, false).
		First(&institute).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(institute.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	token, err := middleware.GenerateJWT(institute.ID, institute.ID, institute.Name, middleware.RoleInstitute, institute.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	institute.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token":     token,
		"institute": institute,
	})
}

// TrainerLogin authenticates a trainer account; the token is scoped to the
// owning institute.
func TrainerLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*validators.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var trainer models.Trainer
	if err := database.Database.Db.
		Where("email = ? AND is_deleted = ?", reqData.Email, false).
		First(&trainer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Trainers without a password have no login yet
	if trainer.Password == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Login not enabled for this trainer!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(trainer.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	token, err := middleware.GenerateJWT(trainer.InstituteID, trainer.ID, trainer.FirstName, middleware.RoleTrainer, trainer.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token":   token,
		"trainer": trainer,
	})
}
