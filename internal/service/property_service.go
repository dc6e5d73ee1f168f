package service

import (
	"context"

	"estatescout/internal/dto"
	"estatescout/internal/models"

	"go.uber.org/zap"
)

// Valuer is the single-record side of the valuation service, used by the
// analyze and predict endpoints.
type Valuer interface {
	Enricher
	PredictProperty(ctx context.Context, p models.Property) (float64, models.ValuationInput, error)
}

// PropertyService serves the non-conversational listing endpoints: the full
// merged dataset, criteria search, single-property analysis, and direct
// valuation pass-through.
type PropertyService struct {
	datasets  DatasetLoader
	valuation Valuer
	llm       ConversationalBackend // nil when not configured
	logger    *zap.Logger
}

func NewPropertyService(datasets DatasetLoader, valuation Valuer, llm ConversationalBackend, logger *zap.Logger) *PropertyService {
	return &PropertyService{
		datasets:  datasets,
		valuation: valuation,
		llm:       llm,
		logger:    logger,
	}
}

// List returns the merged dataset, optionally enriched with predictions.
func (s *PropertyService) List(ctx context.Context, predict bool) []models.Property {
	properties := s.datasets.LoadAll()
	if predict {
		properties = s.valuation.Enrich(ctx, properties)
	}
	return properties
}

// Search applies criteria to the merged dataset.
func (s *PropertyService) Search(criteria *models.SearchCriteria) []models.Property {
	return Filter(s.datasets.LoadAll(), criteria)
}

// Analyze produces the valuation, narrative analysis, and market average for
// one listing. It requires a conversational backend; valuation failures
// degrade to a response without a predicted price.
func (s *PropertyService) Analyze(ctx context.Context, propertyID int) (*dto.AnalyzeResponse, error) {
	if s.llm == nil {
		return nil, models.ErrLLMUnavailable
	}

	all := s.datasets.LoadAll()
	var property *models.Property
	for i := range all {
		if all[i].ID == propertyID {
			property = &all[i]
			break
		}
	}
	if property == nil {
		return nil, models.ErrPropertyNotFound
	}

	var predicted *float64
	if value, _, err := s.valuation.PredictProperty(ctx, *property); err != nil {
		s.logger.Warn("Valuation failed during analysis",
			zap.Int("property_id", propertyID),
			zap.Error(err),
		)
	} else {
		predicted = &value
	}

	similar := sameLocationPeers(all, *property, 5)
	marketAverage := property.Price
	if len(similar) > 0 {
		var sum float64
		for _, p := range similar {
			sum += p.Price
		}
		marketAverage = sum / float64(len(similar))
	}

	annotated := *property
	annotated.PredictedPrice = predicted

	analysis, err := s.llm.AnalyzeProperty(ctx, annotated, topProperties(similar, 3))
	if err != nil {
		s.logger.Warn("Property analysis failed", zap.Error(err))
		analysis = ""
	}

	insights, err := s.llm.InvestmentInsights(ctx, *property, predicted, marketAverage)
	if err != nil {
		s.logger.Warn("Investment insights failed", zap.Error(err))
		insights = ""
	}

	return &dto.AnalyzeResponse{
		Success:                true,
		Analysis:               analysis,
		InvestmentInsights:     insights,
		PredictedPrice:         predicted,
		MarketAverage:          marketAverage,
		SimilarPropertiesCount: len(similar),
	}, nil
}

// Predict maps a client-supplied property to the valuation input and calls
// the external service directly, echoing the mapped input back.
func (s *PropertyService) Predict(ctx context.Context, property models.Property) (*dto.PredictResponse, error) {
	predicted, input, err := s.valuation.PredictProperty(ctx, property)
	if err != nil {
		return nil, err
	}

	return &dto.PredictResponse{
		Success:        true,
		PredictedPrice: predicted,
		InputData:      input,
	}, nil
}

func topProperties(properties []models.Property, n int) []models.Property {
	if len(properties) <= n {
		return properties
	}
	return properties[:n]
}
