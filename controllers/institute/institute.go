package instituteController

import (
	"log"

	"institute/database"
	"institute/middleware"
	"institute/models"
	validators "institute/validators/institute"

	"github.com/gofiber/fiber/v2"
)

func GetProfile(c *fiber.Ctx) error {
	instituteId, ok := c.Locals("instituteId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var institute models.Institute
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", instituteId, false).
		First(&institute).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Institute not found!", nil)
	}

	institute.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", institute)
}

func UpdateProfile(c *fiber.Ctx) error {
	instituteId, ok := c.Locals("instituteId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*validators.ProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var institute models.Institute
	db := database.Database.Db
	if err := db.
		Where("id = ? AND is_deleted = ?", instituteId, false).
		First(&institute).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Institute not found!", nil)
	}

	institute.Name = reqData.Name
	institute.Mobile = reqData.Mobile
	institute.Category = reqData.Category
	institute.Description = reqData.Description
	institute.Address = reqData.Address
	institute.City = reqData.City
	institute.State = reqData.State
	institute.PinCode = reqData.PinCode

	if err := db.Save(&institute).Error; err != nil {
		log.Printf("Error updating institute: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	institute.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", institute)
}

// ListInstitutes is the public directory, optionally filtered by category.
func ListInstitutes(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Institute{}).
		Where("is_deleted = ?", false)

	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}

	var institutes []models.Institute
	if err := db.
		Select("id", "name", "category", "description", "city", "state").
		Order("name").
		Find(&institutes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch institutes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Institutes fetched successfully!", fiber.Map{
		"institutes": institutes,
	})
}
