package handlers

import (
	"errors"
	"strconv"

	"estatescout/internal/dto"
	"estatescout/internal/models"
	"estatescout/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PropertyHandler struct {
	propertyService *service.PropertyService
	chatService     *service.ChatService
	valuationURL    string
	logger          *zap.Logger
}

func NewPropertyHandler(
	propertyService *service.PropertyService,
	chatService *service.ChatService,
	valuationURL string,
	logger *zap.Logger,
) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		chatService:     chatService,
		valuationURL:    valuationURL,
		logger:          logger,
	}
}

// Health godoc
// @Summary Service liveness
// @Description Reports liveness and the configured valuation-service URL
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/health [get]
func (h *PropertyHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Success:             true,
		Status:              "ok",
		Message:             "Real estate search API is running",
		ValuationServiceURL: h.valuationURL,
	})
}

// List godoc
// @Summary List all properties
// @Description Returns the merged dataset, optionally enriched with price predictions
// @Tags properties
// @Produce json
// @Param predict query bool false "Attach predicted prices"
// @Success 200 {object} dto.PropertiesResponse
// @Router /api/properties [get]
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	predict := c.QueryBool("predict", false)
	properties := h.propertyService.List(c.Context(), predict)

	return c.JSON(dto.PropertiesResponse{
		Success: true,
		Data:    properties,
		Count:   len(properties),
	})
}

// SearchByQuery godoc
// @Summary Search properties via query string
// @Description Filters the merged dataset by query-string criteria
// @Tags properties
// @Produce json
// @Param q query string false "Location shorthand"
// @Param location query string false "Location substring"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param bedrooms query int false "Minimum bedrooms"
// @Param bathrooms query int false "Minimum bathrooms"
// @Param minSize query number false "Minimum size in sqft"
// @Success 200 {object} dto.SearchResponse
// @Router /api/properties/search [get]
func (h *PropertyHandler) SearchByQuery(c *fiber.Ctx) error {
	criteria := &models.SearchCriteria{}

	if q := c.Query("q"); q != "" {
		criteria.Location = q
	}
	if location := c.Query("location"); location != "" {
		criteria.Location = location
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		criteria.MaxBudget = &v
	}
	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		criteria.MinBudget = &v
	}
	if v, err := strconv.Atoi(c.Query("bedrooms")); err == nil {
		criteria.Bedrooms = &v
	}
	if v, err := strconv.Atoi(c.Query("bathrooms")); err == nil {
		criteria.Bathrooms = &v
	}
	if v, err := strconv.ParseFloat(c.Query("minSize"), 64); err == nil {
		criteria.MinSize = &v
	}

	results := h.propertyService.Search(criteria)

	return c.JSON(dto.SearchResponse{
		Success: true,
		Data:    results,
		Count:   len(results),
		Filters: criteria,
	})
}

// Search godoc
// @Summary Conversational search
// @Description Orchestrator entry point: routes between open conversation and property search
// @Tags properties
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Search request"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/properties/search [post]
func (h *PropertyHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	return c.JSON(h.chatService.Search(c.Context(), &req))
}

// Analyze godoc
// @Summary Analyze a single property
// @Description Valuation plus narrative analysis and market average over same-location peers
// @Tags properties
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeRequest true "Property id"
// @Success 200 {object} dto.AnalyzeResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/properties/analyze [post]
func (h *PropertyHandler) Analyze(c *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil || req.PropertyID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "propertyId is required",
		})
	}

	resp, err := h.propertyService.Analyze(c.Context(), req.PropertyID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrLLMUnavailable):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Conversational backend not configured",
			})
		case errors.Is(err, models.ErrPropertyNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Property not found",
			})
		}
		h.logger.Error("Property analysis failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to analyze property",
		})
	}

	return c.JSON(resp)
}

// Predict godoc
// @Summary Predict a property's price
// @Description Direct pass-through to the valuation service with the mapped input echoed back
// @Tags properties
// @Accept json
// @Produce json
// @Param request body dto.PredictRequest true "Property payload"
// @Success 200 {object} dto.PredictResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/properties/predict [post]
func (h *PropertyHandler) Predict(c *fiber.Ctx) error {
	var req dto.PredictRequest
	if err := c.BodyParser(&req); err != nil || req.Property == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Property data is required",
		})
	}

	resp, err := h.propertyService.Predict(c.Context(), *req.Property)
	if err != nil {
		h.logger.Warn("Direct prediction failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   "Valuation service unavailable",
		})
	}

	return c.JSON(resp)
}
