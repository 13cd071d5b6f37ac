package ai

import (
	"context"

	"foodmate-server/internal/domain"
)

// Reply is the provider output contract: response text plus structured
// recommendations.
type Reply struct {
	Content         string
	Recommendations []domain.Recommendation
}

// Provider turns a user message into an assistant reply.
type Provider interface {
	Reply(ctx context.Context, message string) (*Reply, error)
}
