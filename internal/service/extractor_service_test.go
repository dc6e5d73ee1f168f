package service

import (
	"context"
	"errors"
	"testing"

	"estatescout/internal/models"

	"go.uber.org/zap"
)

type stubExtractor struct {
	criteria *models.SearchCriteria
	err      error
}

func (s *stubExtractor) ExtractCriteria(_ context.Context, _ string) (*models.SearchCriteria, error) {
	return s.criteria, s.err
}

func TestHeuristicFullQuery(t *testing.T) {
	svc := NewExtractorService(nil, false, zap.NewNop())

	criteria := svc.Heuristic("Show me 3 bedroom homes in Austin under 400k")

	if criteria.Location != "austin" {
		t.Errorf("expected location austin, got %q", criteria.Location)
	}
	if criteria.Bedrooms == nil || *criteria.Bedrooms != 3 {
		t.Errorf("expected 3 bedrooms, got %v", criteria.Bedrooms)
	}
	if criteria.MaxBudget == nil || *criteria.MaxBudget != 400000 {
		t.Errorf("expected budget 400000, got %v", criteria.MaxBudget)
	}
}

func TestHeuristicBudgetSuffixes(t *testing.T) {
	tests := []struct {
		name    string
		legacy  bool
		message string
		want    float64
	}{
		{"plain number", false, "budget of 350000", 350000},
		{"k multiplies by a thousand", false, "under 500k", 500000},
		{"m multiplies by a million", false, "max 2m", 2000000},
		{"m under legacy flag multiplies by a thousand", true, "max 2m", 2000},
		{"dollar sign accepted", false, "price under $750k", 750000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewExtractorService(nil, tt.legacy, zap.NewNop())
			criteria := svc.Heuristic(tt.message)
			if criteria.MaxBudget == nil {
				t.Fatal("expected a budget, got none")
			}
			if *criteria.MaxBudget != tt.want {
				t.Errorf("expected %f, got %f", tt.want, *criteria.MaxBudget)
			}
		})
	}
}

func TestHeuristicBathrooms(t *testing.T) {
	svc := NewExtractorService(nil, false, zap.NewNop())
	criteria := svc.Heuristic("2 bathroom condos near tampa")
	if criteria.Bathrooms == nil || *criteria.Bathrooms != 2 {
		t.Errorf("expected 2 bathrooms, got %v", criteria.Bathrooms)
	}
	if criteria.Location != "tampa" {
		t.Errorf("expected location tampa, got %q", criteria.Location)
	}
}

func TestHeuristicNoSignalsLeavesFieldsUnset(t *testing.T) {
	svc := NewExtractorService(nil, false, zap.NewNop())
	criteria := svc.Heuristic("hello")
	if !criteria.IsEmpty() {
		t.Errorf("expected empty criteria, got %+v", criteria)
	}
}

func TestExtractPrefersLLM(t *testing.T) {
	want := &models.SearchCriteria{Location: "denver", Bedrooms: intPtr(2)}
	svc := NewExtractorService(&stubExtractor{criteria: want}, false, zap.NewNop())

	got := svc.Extract(context.Background(), "something in miami")

	if got.Location != "denver" {
		t.Errorf("expected the model's criteria to win, got %+v", got)
	}
}

func TestExtractFallsBackToHeuristicOnLLMError(t *testing.T) {
	svc := NewExtractorService(&stubExtractor{err: errors.New("backend down")}, false, zap.NewNop())

	got := svc.Extract(context.Background(), "2 bedroom homes in miami")

	if got.Location != "miami" || got.Bedrooms == nil || *got.Bedrooms != 2 {
		t.Errorf("expected heuristic fallback criteria, got %+v", got)
	}
}
