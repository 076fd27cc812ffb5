package handlers

import (
	"kimlik/internal/models"
	"kimlik/internal/services/signup"
	"kimlik/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// SignupHandler exposes the multi-step registration flow.
type SignupHandler struct {
	service signup.Service
}

func NewSignupHandler(service signup.Service) *SignupHandler {
	return &SignupHandler{service: service}
}

// Signup routes a registration request to the right step: 1 creates a
// pending record and dispatches the verification code, 3 finalizes
// credentials. Step 2 has its own endpoint (VerifyPhone).
func (h *SignupHandler) Signup(c *fiber.Ctx) error {
	var body struct {
		Step int `json:"step"`
		models.CreatePendingInput
		models.FinalizeInput
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	switch body.Step {
	case 1:
		pending, err := h.service.CreatePending(c.Context(), &body.CreatePendingInput)
		if err != nil {
			return response.Domain(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":              "Verification code sent",
			"user_id":              pending.UserID,
			"next_step":            2,
			"username_suggestions": pending.UsernameSuggestions,
		})
	case 3:
		completed, err := h.service.Finalize(&body.FinalizeInput)
		if err != nil {
			return response.Domain(c, err)
		}
		return response.Created(c, "Registration completed", completed)
	default:
		return response.BadRequest(c, "Invalid step")
	}
}

// VerifyPhone checks a submitted verification code (step 2).
func (h *SignupHandler) VerifyPhone(c *fiber.Ctx) error {
	var body struct {
		UserID uint   `json:"user_id"`
		Code   string `json:"verification_code"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.service.Verify(body.UserID, body.Code); err != nil {
		return response.Domain(c, err)
	}

	return c.JSON(fiber.Map{
		"message":   "Phone verified successfully",
		"user_id":   body.UserID,
		"next_step": 3,
	})
}

// ResendCode issues a fresh verification code for a pending record.
func (h *SignupHandler) ResendCode(c *fiber.Ctx) error {
	var body struct {
		UserID uint `json:"user_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.service.Resend(c.Context(), body.UserID); err != nil {
		return response.Domain(c, err)
	}
	return response.Success(c, "New verification code sent successfully", nil)
}

// CheckUsername reports username availability (409 when taken).
func (h *SignupHandler) CheckUsername(c *fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if body.Username == "" {
		return response.BadRequest(c, "Username is required")
	}

	exists, err := h.service.UsernameExists(body.Username)
	if err != nil {
		return response.ServerError(c, "failed to check username")
	}
	if exists {
		return response.Error(c, fiber.StatusConflict, "Username already exists")
	}
	return response.Success(c, "Username is available", nil)
}

// CheckPhone reports phone-number availability (409 when taken).
func (h *SignupHandler) CheckPhone(c *fiber.Ctx) error {
	var body struct {
		PhoneNumber string `json:"phone_number"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if body.PhoneNumber == "" {
		return response.BadRequest(c, "Phone number is required")
	}

	exists, err := h.service.PhoneExists(body.PhoneNumber)
	if err != nil {
		return response.ServerError(c, "failed to check phone number")
	}
	if exists {
		return response.Error(c, fiber.StatusConflict, "Phone number already exists")
	}
	return response.Success(c, "Phone number is available", nil)
}
