package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"estatescout/internal/dto"
	"estatescout/internal/models"
	"estatescout/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// LLMService wraps the GigaChat completion API behind the operations the
// orchestrator needs. Every call carries a bounded timeout; callers treat any
// error as "no response from this step" and fall through to deterministic
// behavior.
type LLMService struct {
	client  *gigago.Client
	model   *gigago.GenerativeModel
	timeout time.Duration
	logger  *zap.Logger
}

func buildSystemInstruction() string {
	return `You are an expert real estate assistant chatbot for a property search service.
You help users with real estate questions and advice, property investment insights,
market trends, home buying and selling guidance, property feature explanations,
and budget planning.

Be knowledgeable, friendly, and professional. Reference the available property
data when relevant, and be transparent about the limits of the dataset: it is a
fixed set of listings in US cities, not a live market feed. When asked to
return structured data, return ONLY valid JSON with no surrounding commentary.`
}

func NewLLMService(cfg *config.GigaChatConfig, logger *zap.Logger) (*LLMService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel("GigaChat")
	model.SystemInstruction = buildSystemInstruction()
	model.Temperature = 0.7

	return &LLMService{
		client:  client,
		model:   model,
		timeout: cfg.Timeout,
		logger:  logger,
	}, nil
}

func (s *LLMService) generate(ctx context.Context, messages []gigago.Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", models.ErrLLMUnavailable
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", models.ErrLLMUnavailable
	}

	return sanitizeUTF8(content), nil
}

// ExtractCriteria asks the model for a JSON-only criteria object and parses
// the first JSON object found in the reply.
func (s *LLMService) ExtractCriteria(ctx context.Context, message string) (*models.SearchCriteria, error) {
	prompt := fmt.Sprintf(`Extract real estate search criteria from this user message.
Return ONLY a JSON object with these fields (use null if not mentioned):
location, maxBudget, minBudget, bedrooms, bathrooms, minSize, amenities (array).
User message: %q`, message)

	content, err := s.generate(ctx, []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	})
	if err != nil {
		return nil, err
	}

	jsonStart := strings.Index(content, "{")
	jsonEnd := strings.LastIndex(content, "}")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd < jsonStart {
		return nil, fmt.Errorf("no JSON object in response: %s", content)
	}

	var criteria models.SearchCriteria
	if err := json.Unmarshal([]byte(content[jsonStart:jsonEnd+1]), &criteria); err != nil {
		return nil, fmt.Errorf("failed to parse criteria JSON: %w", err)
	}

	s.logger.Info("Criteria extracted via LLM", zap.String("location", criteria.Location))
	return &criteria, nil
}

// Converse produces an open-domain reply to a non-search message, giving the
// model a short dataset summary and the last turns of the conversation.
func (s *LLMService) Converse(ctx context.Context, message string, history []dto.ChatTurn, stats models.DatasetStats) (string, error) {
	var sb strings.Builder
	if stats.Total > 0 {
		fmt.Fprintf(&sb, "Available property data: %d properties in locations: %s\n",
			stats.Total, strings.Join(topN(stats.Locations, 5), ", "))
		fmt.Fprintf(&sb, "Price range: $%.0f - $%.0f\n", stats.MinPrice, stats.MaxPrice)
	}

	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: "Context for this conversation:\n" + sb.String()},
	}
	for _, turn := range lastN(history, 5) {
		role := gigago.RoleUser
		if turn.Role == "assistant" {
			role = gigago.RoleAssistant
		}
		messages = append(messages, gigago.Message{Role: role, Content: turn.Content})
	}
	messages = append(messages, gigago.Message{Role: gigago.RoleUser, Content: message})

	return s.generate(ctx, messages)
}

// AnalyzeProperty generates a short value/amenity/market assessment for a
// single listing against its same-location peers.
func (s *LLMService) AnalyzeProperty(ctx context.Context, p models.Property, similar []models.Property) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyze this real estate property and provide insights:\n\n")
	fmt.Fprintf(&sb, "Property: %s\nLocation: %s\nPrice: $%.0f\n", p.Title, p.Location, p.Price)
	if p.Bedrooms != nil && p.Bathrooms != nil {
		fmt.Fprintf(&sb, "Bedrooms: %d, Bathrooms: %d\n", *p.Bedrooms, *p.Bathrooms)
	}
	if p.SizeSqft != nil {
		fmt.Fprintf(&sb, "Size: %.0f sqft\n", *p.SizeSqft)
	}
	if len(p.Amenities) > 0 {
		fmt.Fprintf(&sb, "Amenities: %s\n", strings.Join(p.Amenities, ", "))
	}
	if p.PredictedPrice != nil {
		fmt.Fprintf(&sb, "ML Predicted Price: $%.0f\n", *p.PredictedPrice)
	}
	if p.PriceDifferencePercent != nil {
		fmt.Fprintf(&sb, "Price Difference: %.1f%%\n", *p.PriceDifferencePercent)
	}
	if len(similar) > 0 {
		var peers []string
		for _, sp := range similar {
			peers = append(peers, fmt.Sprintf("%s - $%.0f", sp.Title, sp.Price))
		}
		fmt.Fprintf(&sb, "\nSimilar properties in area: %s\n", strings.Join(peers, ", "))
	}
	sb.WriteString(`
Provide a brief analysis (2-3 sentences) covering:
1. Value assessment (is it a good deal?)
2. Key features/amenities highlight
3. Market positioning

Be concise and helpful.`)

	return s.generate(ctx, []gigago.Message{
		{Role: gigago.RoleUser, Content: sb.String()},
	})
}

// InvestmentInsights generates the market-analysis narrative for the analyze
// endpoint, including the computed area average.
func (s *LLMService) InvestmentInsights(ctx context.Context, p models.Property, predicted *float64, marketAverage float64) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyze this property for investment potential:\n\n")
	fmt.Fprintf(&sb, "Property: %s\nLocation: %s\nPrice: $%.0f\n", p.Title, p.Location, p.Price)
	if predicted != nil {
		fmt.Fprintf(&sb, "ML Predicted: $%.0f\n", *predicted)
	}
	if p.Bedrooms != nil && p.Bathrooms != nil {
		fmt.Fprintf(&sb, "Bedrooms: %d, Bathrooms: %d\n", *p.Bedrooms, *p.Bathrooms)
	}
	if p.SizeSqft != nil {
		fmt.Fprintf(&sb, "Size: %.0f sqft\n", *p.SizeSqft)
	}
	fmt.Fprintf(&sb, "Average price in area: $%.0f\n", marketAverage)
	sb.WriteString(`
Provide investment insights (2-3 sentences) covering:
1. Value assessment vs market
2. Investment potential
3. Key considerations

Be professional and helpful.`)

	return s.generate(ctx, []gigago.Message{
		{Role: gigago.RoleUser, Content: sb.String()},
	})
}

// RecommendAlternatives writes the "no exact match, but consider these"
// message accompanying a relaxed-criteria result set.
func (s *LLMService) RecommendAlternatives(ctx context.Context, criteria *models.SearchCriteria, similar []models.Property) (string, error) {
	criteriaJSON, _ := json.Marshal(criteria)

	var sb strings.Builder
	fmt.Fprintf(&sb, "The user searched for properties with these criteria: %s\n", string(criteriaJSON))
	fmt.Fprintf(&sb, "No exact matches were found, but we have %d similar properties available.\n\nSimilar properties:\n", len(similar))
	for i, p := range similar {
		beds, baths := 0, 0
		if p.Bedrooms != nil {
			beds = *p.Bedrooms
		}
		if p.Bathrooms != nil {
			baths = *p.Bathrooms
		}
		fmt.Fprintf(&sb, "%d. %s in %s - $%.0f (%d bed, %d bath)\n", i+1, p.Title, p.Location, p.Price, beds, baths)
	}
	sb.WriteString(`
Provide a helpful response (2-3 sentences) that:
1. Acknowledges no exact match
2. Mentions we found similar properties
3. Suggests they might want to see these alternatives
4. Be encouraging and helpful`)

	return s.generate(ctx, []gigago.Message{
		{Role: gigago.RoleUser, Content: sb.String()},
	})
}

// ExplainNoMatches discloses the dataset limits and the specific reason a
// search produced nothing. The reason string is computed deterministically by
// the orchestrator.
func (s *LLMService) ExplainNoMatches(ctx context.Context, message, reason string, criteria *models.SearchCriteria, stats models.DatasetStats) (string, error) {
	criteriaJSON, _ := json.Marshal(criteria)

	var bedrooms []string
	for _, b := range stats.BedroomOptions {
		bedrooms = append(bedrooms, fmt.Sprintf("%d", b))
	}

	prompt := fmt.Sprintf(`User searched for: %q
Search filters: %s
Result: No properties found

DATASET INFORMATION (must be reflected in the response):
- The dataset is a fixed set of %d listings, not a live market feed
- Locations available: %s (US cities only)
- Price range: $%.0f - $%.0f
- Bedrooms available: %s

REASON: %s

Write a response that:
1. Acknowledges the search
2. Explains the dataset limitation and the specific reason above
3. Suggests actual alternatives from the available locations and price range
4. Is transparent and accurate`,
		message, string(criteriaJSON), stats.Total,
		strings.Join(stats.Locations, ", "),
		stats.MinPrice, stats.MaxPrice,
		strings.Join(bedrooms, ", "),
		reason,
	)

	return s.generate(ctx, []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	})
}

// SummarizeResults writes the one-line confirmation attached to a non-empty
// result set.
func (s *LLMService) SummarizeResults(ctx context.Context, message string, count int) (string, error) {
	prompt := fmt.Sprintf(`The user searched: %q
Found %d properties matching their criteria.

Provide a brief, friendly response (1-2 sentences) that:
1. Confirms we found properties
2. Highlights key features if relevant
3. Encourages them to explore the results

Be concise and enthusiastic.`, message, count)

	return s.generate(ctx, []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	})
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}

func lastN(turns []dto.ChatTurn, n int) []dto.ChatTurn {
	if len(turns) <= n {
		return turns
	}
	return turns[len(turns)-n:]
}

func topN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
