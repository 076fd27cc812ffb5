package handlers

import (
	"kimlik/internal/models"
	"kimlik/internal/services/profile"
	"kimlik/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler exposes the authenticated profile surface.
type ProfileHandler struct {
	service profile.Service
}

func NewProfileHandler(service profile.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// ListInterests returns the selectable interest catalogue.
func (h *ProfileHandler) ListInterests(c *fiber.Ctx) error {
	interests, err := h.service.ListInterests(c.Context())
	if err != nil {
		return response.ServerError(c, "failed to list interests")
	}
	return c.JSON(fiber.Map{"interests": interests})
}

// UpdateInterests replaces the caller's interests (maximum 3).
func (h *ProfileHandler) UpdateInterests(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	var body struct {
		Interests []uint `json:"interests"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	names, err := h.service.UpdateInterests(claims.UserID, body.Interests)
	if err != nil {
		return response.Domain(c, err)
	}

	return c.JSON(fiber.Map{
		"message":   "Interests updated successfully",
		"interests": names,
	})
}

// UpdatePictures accepts multipart profile_picture and/or banner_picture
// uploads and returns the public URLs of the stored objects.
func (h *ProfileHandler) UpdatePictures(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	result := fiber.Map{}

	for field, kind := range map[string]profile.PictureKind{
		"profile_picture": profile.PictureProfile,
		"banner_picture":  profile.PictureBanner,
	} {
		fh, err := c.FormFile(field)
		if err != nil {
			continue
		}

		file, err := fh.Open()
		if err != nil {
			return response.BadRequest(c, "could not read "+field)
		}

		url, err := h.service.UpdatePicture(
			c.Context(),
			claims.UserID,
			kind,
			fh.Filename,
			fh.Header.Get("Content-Type"),
			fh.Size,
			file,
		)
		file.Close()
		if err != nil {
			return response.Domain(c, err)
		}
		result[string(kind)+"_url"] = url
	}

	if len(result) == 0 {
		return response.BadRequest(c, "No pictures provided")
	}

	result["message"] = "Upload successful"
	return c.JSON(result)
}
