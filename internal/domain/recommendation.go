package domain

// Recommendation is a structured suggestion attached to an assistant reply.
// Recommendations are derived per reply and never persisted.
type Recommendation struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Distance string  `json:"distance,omitempty"`
	Rating   float64 `json:"rating,omitempty"`
	Offer    string  `json:"offer,omitempty"`
}
