package service

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"estatescout/internal/models"

	"go.uber.org/zap"
)

var (
	locationPattern = regexp.MustCompile(`(?:in|at|near)\s+([a-z\s,]+?)(?:\s|$|,|\.)`)
	budgetPattern   = regexp.MustCompile(`(?:budget|price|cost|under|below|max|maximum)\s*(?:of|is|:)?\s*\$?(\d+)\s*(k|m)?`)
	bedroomPattern  = regexp.MustCompile(`(\d+)\s*(?:bed|bedroom|bhk)`)
	bathroomPattern = regexp.MustCompile(`(\d+)\s*(?:bath|bathroom)`)
)

// CriteriaExtractor is the language-model side of extraction. The heuristic
// path needs no backend and is always available.
type CriteriaExtractor interface {
	ExtractCriteria(ctx context.Context, message string) (*models.SearchCriteria, error)
}

// ExtractorService converts a free-text query into structured criteria,
// preferring the language model and falling back to regex heuristics. Extract
// never fails; at worst it returns an empty criteria object.
type ExtractorService struct {
	llm                CriteriaExtractor // nil when no backend is configured
	legacyBudgetSuffix bool
	logger             *zap.Logger
}

func NewExtractorService(llm CriteriaExtractor, legacyBudgetSuffix bool, logger *zap.Logger) *ExtractorService {
	return &ExtractorService{
		llm:                llm,
		legacyBudgetSuffix: legacyBudgetSuffix,
		logger:             logger,
	}
}

func (s *ExtractorService) Extract(ctx context.Context, message string) *models.SearchCriteria {
	if s.llm != nil {
		criteria, err := s.llm.ExtractCriteria(ctx, message)
		if err == nil {
			return criteria
		}
		s.logger.Warn("LLM criteria extraction failed, using heuristics", zap.Error(err))
	}

	return s.Heuristic(message)
}

// Heuristic applies independent regex searches over the lowercased message.
// Absent matches leave the corresponding field unset.
func (s *ExtractorService) Heuristic(message string) *models.SearchCriteria {
	criteria := &models.SearchCriteria{}
	lower := strings.ToLower(message)

	if m := locationPattern.FindStringSubmatch(lower); m != nil {
		criteria.Location = strings.TrimSpace(m[1])
	}

	if m := budgetPattern.FindStringSubmatch(lower); m != nil {
		if amount, err := strconv.ParseFloat(m[1], 64); err == nil {
			switch m[2] {
			case "k":
				amount *= 1_000
			case "m":
				// The original heuristic treated "m" the same as "k"
				// (x1000); the legacy flag preserves that reading.
				if s.legacyBudgetSuffix {
					amount *= 1_000
				} else {
					amount *= 1_000_000
				}
			}
			criteria.MaxBudget = &amount
		}
	}

	if m := bedroomPattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			criteria.Bedrooms = &n
		}
	}

	if m := bathroomPattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			criteria.Bathrooms = &n
		}
	}

	return criteria
}
