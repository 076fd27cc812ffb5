package response

import (
	"errors"

	domain "kimlik/internal/errors"

	"github.com/gofiber/fiber/v2"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

func Unauthorized(c *fiber.Ctx) error {
	return Error(c, fiber.StatusUnauthorized, "Unauthorized")
}

// Domain maps a typed domain error onto its HTTP status, keeping the
// machine-readable code alongside the message.
func Domain(c *fiber.Ctx, err error) error {
	var de *domain.DomainError
	if !errors.As(err, &de) {
		return ServerError(c, "internal error")
	}

	status := fiber.StatusBadRequest
	switch de.Code {
	case "USER_NOT_FOUND":
		status = fiber.StatusNotFound
	case "USERNAME_TAKEN", "PHONE_EXISTS":
		status = fiber.StatusConflict
	case "SMS_DISPATCH_FAILED":
		status = fiber.StatusInternalServerError
	}

	return c.Status(status).JSON(fiber.Map{
		"error": de.Message,
		"code":  de.Code,
	})
}
