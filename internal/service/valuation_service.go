package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"estatescout/internal/models"
	"estatescout/pkg/config"
	"estatescout/pkg/pool"
	"estatescout/pkg/retry"

	"go.uber.org/zap"
)

// Unknown-data defaults for the valuation input. The source datasets do not
// carry year-built or school-rating fields for every listing, so missing
// values are filled with these documented placeholders rather than silently
// invented per record.
const (
	defaultBedrooms     = 2
	defaultBathrooms    = 2
	defaultYearBuilt    = 2010
	defaultSchoolRating = 8
)

var condoKeywords = []string{"apartment", "condo", "studio", "penthouse"}

// ValuationService talks to the external price-prediction service. It never
// fails a request: an unreachable service leaves records unmodified and a
// per-record failure leaves that record's predicted fields unset.
type ValuationService struct {
	baseURL     string
	httpClient  *http.Client
	retry       retry.Config
	concurrency int
	logger      *zap.Logger
}

func NewValuationService(cfg *config.ValuationConfig, logger *zap.Logger) *ValuationService {
	return &ValuationService{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		retry:       retry.Config{MaxAttempts: cfg.MaxRetries, BaseDelay: 200 * time.Millisecond, Logger: logger},
		concurrency: cfg.Concurrency,
		logger:      logger,
	}
}

// BaseURL returns the configured valuation-service address for the health
// endpoint.
func (s *ValuationService) BaseURL() string {
	return s.baseURL
}

// Healthy probes the valuation service once.
func (s *ValuationService) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK
}

// MapInput builds the fixed-shape valuation input for a property. The type is
// classified from the title; the size populates lot area for single-family
// homes and building area for condos; amenity text drives the pool/garage
// flags.
func MapInput(p models.Property) models.ValuationInput {
	title := strings.ToLower(p.Title)
	isCondo := false
	for _, kw := range condoKeywords {
		if strings.Contains(title, kw) {
			isCondo = true
			break
		}
	}

	size := 1500.0
	if p.SizeSqft != nil {
		size = *p.SizeSqft
	}

	input := models.ValuationInput{
		PropertyType: "SFH",
		LotArea:      size,
		Bedrooms:     defaultBedrooms,
		Bathrooms:    defaultBathrooms,
		YearBuilt:    defaultYearBuilt,
		SchoolRating: defaultSchoolRating,
	}
	if isCondo {
		input.PropertyType = "Condo"
		input.LotArea = 0
		input.BuildingArea = size
	}

	if p.Bedrooms != nil {
		input.Bedrooms = *p.Bedrooms
	}
	if p.Bathrooms != nil {
		input.Bathrooms = *p.Bathrooms
	}
	if p.YearBuilt != nil {
		input.YearBuilt = *p.YearBuilt
	}
	if p.SchoolRating != nil {
		input.SchoolRating = *p.SchoolRating
	}

	for _, a := range p.Amenities {
		aLower := strings.ToLower(a)
		if strings.Contains(aLower, "pool") || strings.Contains(aLower, "swimming") {
			input.HasPool = true
		}
		if strings.Contains(aLower, "garage") || strings.Contains(aLower, "parking") {
			input.HasGarage = true
		}
	}

	return input
}

// Predict calls the valuation endpoint for a single mapped input.
func (s *ValuationService) Predict(ctx context.Context, input models.ValuationInput) (float64, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return 0, fmt.Errorf("failed to encode valuation input: %w", err)
	}

	var predicted float64
	err = s.retry.Do(ctx, "valuation predict", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/predict", bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			respBody, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("valuation service returned %d: %s", resp.StatusCode, string(respBody))
		}

		var predictResp struct {
			PredictedPrice float64 `json:"predicted_price"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&predictResp); err != nil {
			return fmt.Errorf("failed to decode valuation response: %w", err)
		}

		predicted = predictResp.PredictedPrice
		return nil
	})
	if err != nil {
		return 0, err
	}

	return predicted, nil
}

// PredictProperty maps and predicts a single property.
func (s *ValuationService) PredictProperty(ctx context.Context, p models.Property) (float64, models.ValuationInput, error) {
	input := MapInput(p)
	predicted, err := s.Predict(ctx, input)
	return predicted, input, err
}

// Enrich attaches predicted prices and derived deltas to a copy of the input
// records. The health probe runs first and short-circuits the whole batch;
// after it, per-record calls fan out through a bounded worker pool with no
// ordering dependency between records.
func (s *ValuationService) Enrich(ctx context.Context, properties []models.Property) []models.Property {
	if len(properties) == 0 {
		return properties
	}

	if !s.Healthy(ctx) {
		s.logger.Warn("Valuation service not available, skipping predictions",
			zap.String("base_url", s.baseURL))
		return properties
	}

	enriched := make([]models.Property, len(properties))
	copy(enriched, properties)

	workers := pool.New(s.concurrency)
	for i := range enriched {
		i := i
		workers.Submit(func() {
			predicted, _, err := s.PredictProperty(ctx, enriched[i])
			if err != nil {
				s.logger.Warn("Price prediction failed for property",
					zap.Int("property_id", enriched[i].ID),
					zap.Error(err),
				)
				return
			}

			price := enriched[i].Price
			diff := predicted - price
			percent := 0.0
			if price != 0 {
				percent = math.Round(diff/price*1000) / 10
			}

			enriched[i].PredictedPrice = &predicted
			enriched[i].PriceDifference = &diff
			enriched[i].PriceDifferencePercent = &percent
		})
	}
	workers.Wait()

	return enriched
}
