package recommendation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"platefinder/domain"
	"platefinder/internal/monitoring"
	"platefinder/pkg/order"
	"platefinder/pkg/profile"
)

const maxRecommendations = 3

const systemPrompt = "You are an AI food recommendation system. Your goal is to recommend dishes " +
	"from the available restaurants based on user preferences. Provide specific dish recommendations " +
	"with descriptions and reasons why they match the user's preferences. " +
	"Respond with a JSON object containing a \"recommendations\" array whose entries have these " +
	"fields: restaurantId, restaurantName, dishName, description, reason, estimatedPrice. " +
	"Only use restaurant ids that appear in the candidate list. Do not include any text outside the JSON."

type (
	RecommendationService interface {
		GetRecommendations(ctx context.Context, req domain.RecommendationRequest) ([]domain.Recommendation, error)
	}

	recommendationService struct {
		model          llms.Model
		profileService profile.ProfileService
		orderService   order.OrderService
	}
)

func NewRecommendationService(model llms.Model, profileService profile.ProfileService, orderService order.OrderService) RecommendationService {
	return &recommendationService{
		model:          model,
		profileService: profileService,
		orderService:   orderService,
	}
}

// GetRecommendations asks the completion provider for up to three dish
// suggestions drawn from the submitted candidates. Records referencing ids
// outside the candidate set are discarded.
func (s *recommendationService) GetRecommendations(ctx context.Context, req domain.RecommendationRequest) ([]domain.Recommendation, error) {
	candidates := selectCandidates(req.Restaurants, req.Selected)
	if len(candidates) == 0 {
		return nil, domain.ErrPreconditionUnmet
	}

	prompt, err := s.buildPrompt(ctx, candidates, req.Preference)
	if err != nil {
		return nil, err
	}

	resp, err := s.model.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt),
			llms.TextParts(schema.ChatMessageTypeHuman, prompt),
		},
		llms.WithTemperature(0.7),
		llms.WithJSONMode(),
	)
	if err != nil {
		log.Printf("Error getting recommendations from provider: %v", err)
		monitoring.ProviderFailures.WithLabelValues("llm").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderFailed, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		return nil, domain.ErrNoContent
	}

	recommendations, err := parseRecommendations(resp.Choices[0].Content)
	if err != nil {
		return nil, err
	}

	recommendations = filterToCandidates(recommendations, candidates)
	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}

	monitoring.RecommendationRequests.Inc()
	return recommendations, nil
}

// selectCandidates keeps only the restaurants the user marked; with no
// selection every submitted candidate stays in play.
func selectCandidates(restaurants []domain.Restaurant, selected []string) []domain.Restaurant {
	if len(selected) == 0 {
		return restaurants
	}

	wanted := make(map[string]bool, len(selected))
	for _, id := range selected {
		wanted[id] = true
	}

	candidates := make([]domain.Restaurant, 0, len(selected))
	for _, r := range restaurants {
		if wanted[r.ID] {
			candidates = append(candidates, r)
		}
	}
	return candidates
}

func (s *recommendationService) buildPrompt(ctx context.Context, candidates []domain.Restaurant, preference string) (string, error) {
	summaries := make([]map[string]interface{}, 0, len(candidates))
	for _, r := range candidates {
		summaries = append(summaries, map[string]interface{}{
			"id":         r.ID,
			"name":       r.Name,
			"rating":     r.Rating,
			"priceLevel": r.PriceLevel,
			"vicinity":   r.Vicinity,
			"types":      r.Types,
		})
	}
	candidatesJSON, err := json.Marshal(summaries)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"I'm looking for food recommendations. Here are the available restaurants: %s. "+
			"My preference is: %q. %s "+
			"Please recommend up to %d specific dishes from these restaurants that match my preferences.",
		string(candidatesJSON),
		preference,
		s.historyContext(ctx),
		maxRecommendations,
	), nil
}

// historyContext summarizes the persisted order history, favorites, and
// dietary preferences. Failures here degrade the prompt, never the request.
func (s *recommendationService) historyContext(ctx context.Context) string {
	profileData, err := s.profileService.GetProfile(ctx)
	if err != nil {
		return "No previous order history available."
	}

	history, err := s.orderService.GetOrderHistory(ctx)
	if err != nil {
		history = nil
	}

	previous := make([]string, 0)
	seen := make(map[string]bool)
	for _, o := range history {
		for _, item := range o.Items {
			if !seen[item.Name] {
				seen[item.Name] = true
				previous = append(previous, item.Name)
			}
		}
	}

	return fmt.Sprintf(
		"My previous orders: %s. My favorites: %s. My dietary preferences: %s.",
		joinOrNone(previous),
		joinOrNone(profileData.Favorites),
		joinOrNone(profileData.DietaryPreferences),
	)
}

// parseRecommendations accepts either the requested {"recommendations": [...]}
// object or a bare array, trimming any stray text around the JSON payload.
func parseRecommendations(content string) ([]domain.Recommendation, error) {
	text := strings.TrimSpace(content)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && start < end {
		var wrapped domain.RecommendationResponse
		if err := json.Unmarshal([]byte(text[start:end+1]), &wrapped); err == nil && wrapped.Recommendations != nil {
			return wrapped.Recommendations, nil
		}
	}

	start = strings.Index(text, "[")
	end = strings.LastIndex(text, "]")
	if start != -1 && end != -1 && start < end {
		var recommendations []domain.Recommendation
		if err := json.Unmarshal([]byte(text[start:end+1]), &recommendations); err == nil {
			return recommendations, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrMalformedResponse, truncate(text, 200))
}

func filterToCandidates(recommendations []domain.Recommendation, candidates []domain.Restaurant) []domain.Recommendation {
	known := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		known[c.ID] = true
	}

	filtered := make([]domain.Recommendation, 0, len(recommendations))
	for _, r := range recommendations {
		if known[r.RestaurantID] {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, ", ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
