// File: internal/services/ai/rule_provider.go
package ai

import (
	"context"
	"strings"

	"foodmate-server/internal/domain"
)

// RuleProvider is the built-in reply generator: ordered substring checks
// against fixed templates. The first matching rule wins; no rule matching
// falls through to a help menu with no recommendations.
type RuleProvider struct{}

func NewRuleProvider() *RuleProvider {
	return &RuleProvider{}
}

var bakeryRecommendations = []domain.Recommendation{
	{Name: "Sweet Dreams Bakery", Type: "bakery", Distance: "0.8 km", Rating: 4.8},
	{Name: "Choco Lane", Type: "bakery", Distance: "1.5 km", Rating: 4.6},
}

var dealRecommendations = []domain.Recommendation{
	{Name: "Pizza Corner", Type: "restaurant", Offer: "Buy 1 Get 1 on all large pizzas", Rating: 4.3},
	{Name: "Burger Hub", Type: "restaurant", Offer: "30% off on orders above 500", Rating: 4.1},
	{Name: "Sweet Dreams Bakery", Type: "bakery", Offer: "Free brownie with every cheesecake", Rating: 4.8},
}

var restaurantRecommendations = []domain.Recommendation{
	{Name: "Spice Garden", Type: "restaurant", Distance: "1.2 km", Rating: 4.5},
	{Name: "Kacchi Bhai", Type: "restaurant", Distance: "2.0 km", Rating: 4.7},
	{Name: "Noodle House", Type: "restaurant", Distance: "2.4 km", Rating: 4.2},
}

func (p *RuleProvider) Reply(_ context.Context, message string) (*Reply, error) {
	text := strings.ToLower(message)

	switch {
	case containsAny(text, "dessert", "cheesecake"):
		return &Reply{
			Content: "Craving something sweet? Sweet Dreams Bakery is the place to go — " +
				"their baked cheesecake is famous around here. Choco Lane is a great " +
				"pick too if you are after something chocolatey.",
			Recommendations: clone(bakeryRecommendations),
		}, nil
	case containsAny(text, "deal", "offer", "discount"):
		return &Reply{
			Content: "Here are today's best deals near you:\n" +
				"• Pizza Corner — Buy 1 Get 1 on all large pizzas\n" +
				"• Burger Hub — 30% off on orders above 500\n" +
				"• Sweet Dreams Bakery — free brownie with every cheesecake",
			Recommendations: clone(dealRecommendations),
		}, nil
	case containsAny(text, "restaurant", "food", "eat"):
		return &Reply{
			Content: "Here are some popular restaurants near you: Spice Garden, " +
				"Kacchi Bhai and Noodle House. Want me to check today's deals as well?",
			Recommendations: clone(restaurantRecommendations),
		}, nil
	default:
		return &Reply{
			Content: "I can help you with:\n" +
				"• Restaurant recommendations — try \"find me a restaurant\"\n" +
				"• Today's deals — try \"any deals nearby?\"\n" +
				"• Dessert spots — try \"I want cheesecake\"\n\n" +
				"What are you in the mood for?",
			Recommendations: []domain.Recommendation{},
		}, nil
	}
}

func containsAny(text string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// clone keeps callers from mutating the shared templates.
func clone(recs []domain.Recommendation) []domain.Recommendation {
	out := make([]domain.Recommendation, len(recs))
	copy(out, recs)
	return out
}
