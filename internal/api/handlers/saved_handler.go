package handlers

import (
	"errors"
	"strconv"

	"estatescout/internal/dto"
	"estatescout/internal/models"
	"estatescout/internal/service"
	"estatescout/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SavedPropertyHandler struct {
	savedService *service.SavedPropertyService
	logger       *zap.Logger
}

func NewSavedPropertyHandler(savedService *service.SavedPropertyService, logger *zap.Logger) *SavedPropertyHandler {
	return &SavedPropertyHandler{
		savedService: savedService,
		logger:       logger,
	}
}

// List godoc
// @Summary List saved properties
// @Description Returns the user's favorites ordered by recency
// @Tags saved-properties
// @Produce json
// @Param userId query string false "User id" default(default-user)
// @Success 200 {object} dto.SavedListResponse
// @Router /api/saved-properties [get]
func (h *SavedPropertyHandler) List(c *fiber.Ctx) error {
	userID := userIDFromContext(c)

	entries, err := h.savedService.List(c.Context(), userID)
	if err != nil {
		// Reads degrade: an unavailable store is an empty list, not an error.
		return c.JSON(dto.SavedListResponse{
			Success: true,
			Data:    entries,
			Message: "Saved-property store not available - saving features are disabled",
		})
	}

	return c.JSON(dto.SavedListResponse{
		Success: true,
		Data:    entries,
	})
}

// Create godoc
// @Summary Save a property
// @Description Persists a snapshot of the property for the user
// @Tags saved-properties
// @Accept json
// @Produce json
// @Param request body dto.SaveRequest true "Save request"
// @Success 201 {object} dto.SavedResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/saved-properties [post]
func (h *SavedPropertyHandler) Create(c *fiber.Ctx) error {
	var req dto.SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if req.PropertyID == 0 || req.Property == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "propertyId and property are required",
		})
	}
	if req.UserID == "" {
		req.UserID = middleware.DefaultUserID
	}

	entry, err := h.savedService.Save(c.Context(), req.UserID, req.PropertyID, *req.Property)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrAlreadySaved):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"error":   "Property already saved",
			})
		case errors.Is(err, models.ErrStoreUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"success": false,
				"error":   "Saved-property store not available - saving features are disabled",
			})
		}
		h.logger.Error("Failed to save property", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save property",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SavedResponse{
		Success: true,
		Data:    entry,
	})
}

// Delete godoc
// @Summary Remove a saved property
// @Description Deletes the user's saved entry by id
// @Tags saved-properties
// @Produce json
// @Param id path string true "Saved entry id"
// @Param userId query string false "User id" default(default-user)
// @Success 200 {object} dto.SavedResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/saved-properties/{id} [delete]
func (h *SavedPropertyHandler) Delete(c *fiber.Ctx) error {
	// Validate the id shape before touching the store.
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid saved-property id format",
		})
	}

	userID := userIDFromContext(c)

	if err := h.savedService.Delete(c.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Saved property not found",
			})
		case errors.Is(err, models.ErrStoreUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"success": false,
				"error":   "Saved-property store not available - saving features are disabled",
			})
		}
		h.logger.Error("Failed to delete saved property", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to delete saved property",
		})
	}

	return c.JSON(dto.SavedResponse{
		Success: true,
		Message: "Property removed from saved list",
	})
}

// Check godoc
// @Summary Check whether a property is saved
// @Tags saved-properties
// @Produce json
// @Param propertyId path int true "Property id"
// @Param userId query string false "User id" default(default-user)
// @Success 200 {object} dto.CheckSavedResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/saved-properties/check/{propertyId} [get]
func (h *SavedPropertyHandler) Check(c *fiber.Ctx) error {
	propertyID, err := strconv.Atoi(c.Params("propertyId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid property id",
		})
	}

	userID := userIDFromContext(c)
	entry, saved := h.savedService.IsSaved(c.Context(), userID, propertyID)

	resp := dto.CheckSavedResponse{
		Success: true,
		IsSaved: saved,
		Data:    entry,
	}
	if !h.savedService.Available() {
		resp.Message = "Saved-property store not available"
	}

	return c.JSON(resp)
}

func userIDFromContext(c *fiber.Ctx) string {
	if userID, ok := c.Locals(middleware.UserIDKey).(string); ok && userID != "" {
		return userID
	}
	return middleware.DefaultUserID
}
