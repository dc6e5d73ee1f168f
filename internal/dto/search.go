package dto

import "estatescout/internal/models"

// ChatTurn is one prior message of the client-held conversation window.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type SearchRequest struct {
	Filters             *models.SearchCriteria `json:"filters,omitempty"`
	Message             string                 `json:"message,omitempty"`
	Predict             bool                   `json:"predict,omitempty"`
	ConversationHistory []ChatTurn             `json:"conversationHistory,omitempty"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Suggestions accompanies an explained zero-match response so the client can
// offer realistic alternatives.
type Suggestions struct {
	AvailableLocations []string   `json:"availableLocations"`
	PriceRange         PriceRange `json:"priceRange"`
}

type SearchResponse struct {
	Success          bool                   `json:"success"`
	IsConversation   bool                   `json:"isConversation"`
	Message          string                 `json:"message,omitempty"`
	Data             []models.Property      `json:"data"`
	Count            int                    `json:"count"`
	Filters          *models.SearchCriteria `json:"filters"`
	IsRecommendation bool                   `json:"isRecommendation,omitempty"`
	Suggestions      *Suggestions           `json:"suggestions,omitempty"`
}

type PropertiesResponse struct {
	Success bool              `json:"success"`
	Data    []models.Property `json:"data"`
	Count   int               `json:"count"`
}

type HealthResponse struct {
	Success             bool   `json:"success"`
	Status              string `json:"status"`
	Message             string `json:"message"`
	ValuationServiceURL string `json:"valuation_service_url"`
}
