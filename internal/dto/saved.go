package dto

import "estatescout/internal/models"

type SaveRequest struct {
	UserID     string           `json:"userId"`
	PropertyID int              `json:"propertyId"`
	Property   *models.Property `json:"property"`
}

type SavedListResponse struct {
	Success bool                   `json:"success"`
	Data    []models.SavedProperty `json:"data"`
	Message string                 `json:"message,omitempty"`
}

type SavedResponse struct {
	Success bool                  `json:"success"`
	Data    *models.SavedProperty `json:"data,omitempty"`
	Message string                `json:"message,omitempty"`
}

type CheckSavedResponse struct {
	Success bool                  `json:"success"`
	IsSaved bool                  `json:"isSaved"`
	Data    *models.SavedProperty `json:"data,omitempty"`
	Message string                `json:"message,omitempty"`
}
