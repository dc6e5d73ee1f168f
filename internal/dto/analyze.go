package dto

import "estatescout/internal/models"

type AnalyzeRequest struct {
	PropertyID int `json:"propertyId"`
}

type AnalyzeResponse struct {
	Success                bool     `json:"success"`
	Analysis               string   `json:"analysis,omitempty"`
	InvestmentInsights     string   `json:"investmentInsights,omitempty"`
	PredictedPrice         *float64 `json:"predictedPrice"`
	MarketAverage          float64  `json:"marketAverage"`
	SimilarPropertiesCount int      `json:"similarPropertiesCount"`
}

type PredictRequest struct {
	Property *models.Property `json:"property"`
}

type PredictResponse struct {
	Success        bool                  `json:"success"`
	PredictedPrice float64               `json:"predicted_price"`
	InputData      models.ValuationInput `json:"input_data"`
}
