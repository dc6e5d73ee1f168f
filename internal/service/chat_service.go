package service

import (
	"context"
	"fmt"
	"strings"

	"estatescout/internal/dto"
	"estatescout/internal/models"

	"go.uber.org/zap"
)

// searchIntentKeywords route a message to the search pipeline instead of
// open-domain conversation.
var searchIntentKeywords = []string{
	"find", "search", "show", "properties", "homes", "houses", "apartments",
	"condos", "buy", "rent", "bedroom", "bathroom", "budget", "price",
	"location", "area", "tell me", "can you", "i need", "looking for",
}

const maxRecommendations = 5

const noMatchFallbackMessage = "No properties matched your search. " +
	"Try adjusting the location, budget, or number of bedrooms - " +
	"for example \"2 bedroom homes in Miami under 500k\"."

// DatasetLoader provides the merged dataset.
type DatasetLoader interface {
	LoadAll() []models.Property
}

// Enricher attaches predicted prices to a batch of records.
type Enricher interface {
	Enrich(ctx context.Context, properties []models.Property) []models.Property
}

// ConversationalBackend is everything the orchestrator asks of the language
// model. It has one real implementation (LLMService); the heuristic-only mode
// is represented by a nil backend.
type ConversationalBackend interface {
	CriteriaExtractor
	Converse(ctx context.Context, message string, history []dto.ChatTurn, stats models.DatasetStats) (string, error)
	AnalyzeProperty(ctx context.Context, p models.Property, similar []models.Property) (string, error)
	InvestmentInsights(ctx context.Context, p models.Property, predicted *float64, marketAverage float64) (string, error)
	RecommendAlternatives(ctx context.Context, criteria *models.SearchCriteria, similar []models.Property) (string, error)
	ExplainNoMatches(ctx context.Context, message, reason string, criteria *models.SearchCriteria, stats models.DatasetStats) (string, error)
	SummarizeResults(ctx context.Context, message string, count int) (string, error)
}

// ChatService is the per-request orchestrator: it decides between
// conversation and search, resolves criteria, runs the merge/filter
// pipeline, and recovers from empty result sets. Steps run strictly in
// order; every language-model failure degrades to the next deterministic
// step instead of failing the request.
type ChatService struct {
	datasets  DatasetLoader
	extractor *ExtractorService
	llm       ConversationalBackend // nil disables all conversational steps
	valuation Enricher
	logger    *zap.Logger
}

func NewChatService(
	datasets DatasetLoader,
	extractor *ExtractorService,
	llm ConversationalBackend,
	valuation Enricher,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		datasets:  datasets,
		extractor: extractor,
		llm:       llm,
		valuation: valuation,
		logger:    logger,
	}
}

// Search handles one orchestrator request end to end. It never returns an
// error: total upstream failure still yields a well-formed filter-only
// response.
func (s *ChatService) Search(ctx context.Context, req *dto.SearchRequest) *dto.SearchResponse {
	all := s.datasets.LoadAll()
	stats := Stats(all)

	// ConversationCheck: a non-search message with a configured backend is
	// answered directly and the pipeline stops.
	if req.Message != "" && s.llm != nil && !isSearchQuery(req.Message) {
		reply, err := s.llm.Converse(ctx, req.Message, req.ConversationHistory, stats)
		if err == nil {
			return &dto.SearchResponse{
				Success:        true,
				IsConversation: true,
				Message:        reply,
				Data:           []models.Property{},
				Count:          0,
				Filters:        nil,
			}
		}
		s.logger.Warn("Conversational reply failed, falling through to search", zap.Error(err))
	}

	// FilterResolution: client-supplied criteria win; otherwise extract from
	// the message.
	criteria := req.Filters
	if criteria == nil && req.Message != "" {
		criteria = s.extractor.Extract(ctx, req.Message)
	}
	if criteria == nil {
		criteria = &models.SearchCriteria{}
	}

	results := Filter(all, criteria)

	// EmptyResultRecovery.
	if len(results) == 0 {
		if s.llm != nil && req.Message != "" {
			if resp := s.recoverFromEmptyResults(ctx, req, criteria, all, stats); resp != nil {
				return resp
			}
		}
		return &dto.SearchResponse{
			Success:        true,
			IsConversation: false,
			Message:        noMatchFallbackMessage,
			Data:           []models.Property{},
			Count:          0,
			Filters:        criteria,
		}
	}

	// ResultAnnotation.
	if req.Predict {
		results = s.valuation.Enrich(ctx, results)
		if s.llm != nil {
			s.annotateTopResults(ctx, results, all)
		}
	}

	var message string
	if s.llm != nil && req.Message != "" {
		reply, err := s.llm.SummarizeResults(ctx, req.Message, len(results))
		if err != nil {
			s.logger.Warn("Result summary failed", zap.Error(err))
		} else {
			message = reply
		}
	}

	return &dto.SearchResponse{
		Success:        true,
		IsConversation: message != "",
		Message:        message,
		Data:           results,
		Count:          len(results),
		Filters:        criteria,
	}
}

// recoverFromEmptyResults first retries with relaxed criteria (budget x1.2,
// bedrooms -1) and returns the survivors as recommendations; failing that it
// asks the backend to explain the zero-match honestly. A nil return means
// both recovery paths were unavailable.
func (s *ChatService) recoverFromEmptyResults(
	ctx context.Context,
	req *dto.SearchRequest,
	criteria *models.SearchCriteria,
	all []models.Property,
	stats models.DatasetStats,
) *dto.SearchResponse {
	relaxed := relaxCriteria(criteria)
	similar := Filter(all, relaxed)
	if len(similar) > maxRecommendations {
		similar = similar[:maxRecommendations]
	}

	if len(similar) > 0 {
		message, err := s.llm.RecommendAlternatives(ctx, criteria, similar)
		if err == nil {
			if req.Predict {
				similar = s.valuation.Enrich(ctx, similar)
			}
			return &dto.SearchResponse{
				Success:          true,
				IsConversation:   true,
				Message:          message,
				Data:             similar,
				Count:            len(similar),
				Filters:          criteria,
				IsRecommendation: true,
			}
		}
		s.logger.Warn("Recommendation message failed", zap.Error(err))
	}

	reason := noMatchReason(criteria, stats)
	message, err := s.llm.ExplainNoMatches(ctx, req.Message, reason, criteria, stats)
	if err != nil {
		s.logger.Warn("No-match explanation failed", zap.Error(err))
		return nil
	}

	return &dto.SearchResponse{
		Success:        true,
		IsConversation: true,
		Message:        message,
		Data:           []models.Property{},
		Count:          0,
		Filters:        criteria,
		Suggestions: &dto.Suggestions{
			AvailableLocations: topN(stats.Locations, 10),
			PriceRange:         dto.PriceRange{Min: stats.MinPrice, Max: stats.MaxPrice},
		},
	}
}

// annotateTopResults attaches a generated analysis to at most the first three
// results. Failures simply leave the field empty.
func (s *ChatService) annotateTopResults(ctx context.Context, results, all []models.Property) {
	top := len(results)
	if top > 3 {
		top = 3
	}
	for i := 0; i < top; i++ {
		similar := sameLocationPeers(all, results[i], 3)
		analysis, err := s.llm.AnalyzeProperty(ctx, results[i], similar)
		if err != nil {
			s.logger.Warn("Property analysis failed",
				zap.Int("property_id", results[i].ID),
				zap.Error(err),
			)
			continue
		}
		results[i].AIAnalysis = analysis
	}
}

func relaxCriteria(criteria *models.SearchCriteria) *models.SearchCriteria {
	relaxed := *criteria
	if criteria.MaxBudget != nil {
		budget := *criteria.MaxBudget * 1.2
		relaxed.MaxBudget = &budget
	}
	if criteria.Bedrooms != nil {
		bedrooms := *criteria.Bedrooms - 1
		relaxed.Bedrooms = &bedrooms
	}
	return &relaxed
}

// noMatchReason determines why a search produced nothing, in priority order:
// unknown location, budget below the dataset minimum, minimum budget above
// the maximum, bedroom count unavailable, then a generic fallback.
func noMatchReason(criteria *models.SearchCriteria, stats models.DatasetStats) string {
	if criteria.Location != "" && !locationKnown(criteria.Location, stats.Locations) {
		return fmt.Sprintf("The location %q is not in the dataset. It covers only these US cities: %s.",
			criteria.Location, strings.Join(stats.Locations, ", "))
	}
	if criteria.MaxBudget != nil && *criteria.MaxBudget < stats.MinPrice {
		return fmt.Sprintf("The budget of $%.0f is below the minimum property price of $%.0f.",
			*criteria.MaxBudget, stats.MinPrice)
	}
	if criteria.MinBudget != nil && *criteria.MinBudget > stats.MaxPrice {
		return fmt.Sprintf("The minimum budget of $%.0f exceeds the maximum property price of $%.0f.",
			*criteria.MinBudget, stats.MaxPrice)
	}
	if criteria.Bedrooms != nil && len(stats.BedroomOptions) > 0 &&
		*criteria.Bedrooms > stats.BedroomOptions[len(stats.BedroomOptions)-1] {
		var available []string
		for _, b := range stats.BedroomOptions {
			available = append(available, fmt.Sprintf("%d", b))
		}
		return fmt.Sprintf("Properties with %d bedrooms are not available. The dataset has properties with %s bedrooms.",
			*criteria.Bedrooms, strings.Join(available, ", "))
	}
	return "No properties match the combination of the search criteria."
}

func locationKnown(location string, known []string) bool {
	needle := strings.ToLower(location)
	for _, loc := range known {
		if strings.Contains(strings.ToLower(loc), needle) {
			return true
		}
	}
	return false
}

func isSearchQuery(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range searchIntentKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func sameLocationPeers(all []models.Property, p models.Property, limit int) []models.Property {
	var peers []models.Property
	for _, candidate := range all {
		if candidate.ID == p.ID || candidate.Location != p.Location {
			continue
		}
		peers = append(peers, candidate)
		if len(peers) == limit {
			break
		}
	}
	return peers
}
