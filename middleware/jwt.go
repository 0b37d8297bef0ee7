package middleware

import (
	"fmt"
	"institute/config"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const (
	RoleInstitute = "INSTITUTE"
	RoleTrainer   = "TRAINER"
)

// GenerateJWT generates a JWT token scoped to an institute. For trainer
// logins instituteId is the owning institute and subjectId the trainer id;
// for institute logins both are the institute id.
func GenerateJWT(instituteID, subjectID uint, name, role, email string) (string, error) {
	claims := jwt.MapClaims{
		"instituteId": instituteID,
		"subjectId":   subjectID,
		"name":        name,
		"role":        role,
		"email":       email,
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Missing or invalid Authorization header",
		})
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid Authorization header format",
		})
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		jwtSecret := []byte(config.AppConfig.JWTKey)
		return jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid or expired token",
		})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["instituteId"] == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid token payload",
		})
	}

	// JWT number claims decode as float64
	instituteID := claims["instituteId"].(float64)
	c.Locals("instituteId", uint(instituteID))

	if subjectID, ok := claims["subjectId"].(float64); ok {
		c.Locals("subjectId", uint(subjectID))
	}
	if role, ok := claims["role"].(string); ok {
		c.Locals("role", role)
	}

	return c.Next()
}

// InstituteOnly rejects tokens that do not carry the INSTITUTE role. Must
// run after JWTMiddleware.
func InstituteOnly(c *fiber.Ctx) error {
	if role, ok := c.Locals("role").(string); !ok || role != RoleInstitute {
		return JsonResponse(c, fiber.StatusForbidden, false, "Institute access required!", nil)
	}
	return c.Next()
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
