package service

import (
	"context"
	"errors"
	"testing"

	"estatescout/internal/models"

	"go.uber.org/zap"
)

type stubValuer struct {
	stubEnricher
	predicted  float64
	predictErr error
}

func (s *stubValuer) PredictProperty(_ context.Context, p models.Property) (float64, models.ValuationInput, error) {
	if s.predictErr != nil {
		return 0, models.ValuationInput{}, s.predictErr
	}
	return s.predicted, MapInput(p), nil
}

func TestAnalyzeRequiresBackend(t *testing.T) {
	svc := NewPropertyService(&stubDatasets{properties: chatFixtures()}, &stubValuer{}, nil, zap.NewNop())

	if _, err := svc.Analyze(context.Background(), 1); !errors.Is(err, models.ErrLLMUnavailable) {
		t.Errorf("expected ErrLLMUnavailable, got %v", err)
	}
}

func TestAnalyzeUnknownProperty(t *testing.T) {
	svc := NewPropertyService(&stubDatasets{properties: chatFixtures()}, &stubValuer{}, &stubBackend{}, zap.NewNop())

	if _, err := svc.Analyze(context.Background(), 999); !errors.Is(err, models.ErrPropertyNotFound) {
		t.Errorf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestAnalyze(t *testing.T) {
	valuer := &stubValuer{predicted: 333000}
	svc := NewPropertyService(&stubDatasets{properties: chatFixtures()}, valuer, &stubBackend{}, zap.NewNop())

	resp, err := svc.Analyze(context.Background(), 1)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if !resp.Success {
		t.Error("expected success")
	}
	if resp.PredictedPrice == nil || *resp.PredictedPrice != 333000 {
		t.Errorf("expected predicted price 333000, got %v", resp.PredictedPrice)
	}
	if resp.Analysis != "analysis for Condo" {
		t.Errorf("unexpected analysis: %q", resp.Analysis)
	}
	if resp.InvestmentInsights != "insights" {
		t.Errorf("unexpected insights: %q", resp.InvestmentInsights)
	}
	// Property 1 in Miami has one peer (the Studio at 210000).
	if resp.SimilarPropertiesCount != 1 {
		t.Errorf("expected 1 similar property, got %d", resp.SimilarPropertiesCount)
	}
	if resp.MarketAverage != 210000 {
		t.Errorf("expected market average 210000, got %f", resp.MarketAverage)
	}
}

func TestAnalyzeValuationFailureDegrades(t *testing.T) {
	valuer := &stubValuer{predictErr: errors.New("service down")}
	svc := NewPropertyService(&stubDatasets{properties: chatFixtures()}, valuer, &stubBackend{}, zap.NewNop())

	resp, err := svc.Analyze(context.Background(), 1)
	if err != nil {
		t.Fatalf("valuation failure must not fail the analysis: %v", err)
	}
	if resp.PredictedPrice != nil {
		t.Error("failed valuation must leave the predicted price unset")
	}
	if resp.Analysis == "" {
		t.Error("analysis must still be produced")
	}
}

func TestAnalyzeWithoutPeersUsesOwnPrice(t *testing.T) {
	properties := []models.Property{
		{ID: 1, Title: "Lone House", Location: "Boise, ID", Price: 275000},
	}
	svc := NewPropertyService(&stubDatasets{properties: properties}, &stubValuer{predicted: 1}, &stubBackend{}, zap.NewNop())

	resp, err := svc.Analyze(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.MarketAverage != 275000 {
		t.Errorf("expected own price as market average, got %f", resp.MarketAverage)
	}
	if resp.SimilarPropertiesCount != 0 {
		t.Errorf("expected 0 similar properties, got %d", resp.SimilarPropertiesCount)
	}
}

func TestPredictEchoesMappedInput(t *testing.T) {
	valuer := &stubValuer{predicted: 512000}
	svc := NewPropertyService(&stubDatasets{}, valuer, nil, zap.NewNop())

	resp, err := svc.Predict(context.Background(), models.Property{Title: "Downtown Apartment", SizeSqft: floatPtr(900)})
	if err != nil {
		t.Fatal(err)
	}
	if resp.PredictedPrice != 512000 {
		t.Errorf("expected 512000, got %f", resp.PredictedPrice)
	}
	if resp.InputData.PropertyType != "Condo" || resp.InputData.BuildingArea != 900 {
		t.Errorf("expected the mapped input to be echoed, got %+v", resp.InputData)
	}
}

func TestPredictPropagatesFailure(t *testing.T) {
	valuer := &stubValuer{predictErr: errors.New("service down")}
	svc := NewPropertyService(&stubDatasets{}, valuer, nil, zap.NewNop())

	if _, err := svc.Predict(context.Background(), models.Property{Title: "A"}); err == nil {
		t.Error("expected the valuation error to propagate")
	}
}

func TestListWithPredict(t *testing.T) {
	valuer := &stubValuer{}
	svc := NewPropertyService(&stubDatasets{properties: chatFixtures()}, valuer, nil, zap.NewNop())

	properties := svc.List(context.Background(), true)
	if !valuer.called {
		t.Error("predict must run enrichment")
	}
	if len(properties) != 3 {
		t.Errorf("expected 3 properties, got %d", len(properties))
	}
}

func TestSearchDelegatesToFilter(t *testing.T) {
	svc := NewPropertyService(&stubDatasets{properties: chatFixtures()}, &stubValuer{}, nil, zap.NewNop())

	results := svc.Search(&models.SearchCriteria{Location: "miami"})
	if len(results) != 2 {
		t.Errorf("expected 2 miami results, got %d", len(results))
	}
}
