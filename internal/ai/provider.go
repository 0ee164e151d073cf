package ai

import "context"

// GiftIdea is an abstract, pre-product suggestion.
type GiftIdea struct {
	Title  string `json:"title"`
	Query  string `json:"query"`
	Reason string `json:"reason"`
}

// IdeaRequest carries everything the generator needs about the session.
type IdeaRequest struct {
	Relation  string
	Age       string
	Occasion  string
	BudgetMin float64
	BudgetMax float64
	Liked     []string // accepted swipe-category ids
}

// IdeaProvider generates up to 3 gift ideas for a recipient.
type IdeaProvider interface {
	GenerateIdeas(ctx context.Context, req IdeaRequest) ([]GiftIdea, error)
}

// MaxIdeas bounds every provider's output.
const MaxIdeas = 3

// MockIdeas is the fixed idea set used whenever no generation credential is
// configured. Independent of recipient and preferences.
func MockIdeas() []GiftIdea {
	return []GiftIdea{
		{Title: "Instant Camera", Query: "Fujifilm Instax Mini 12", Reason: "Great for capturing memories"},
		{Title: "Smart Frame", Query: "Aura Carver Digital Frame", Reason: "Perfect for sharing photos"},
		{Title: "Wellness Kit", Query: "Self care gift basket", Reason: "Relaxing and thoughtful"},
	}
}

// MockProvider returns MockIdeas unconditionally. It stands in for the real
// provider when no API key is configured, keeping the rest of the app
// identical in both modes.
type MockProvider struct{}

func (MockProvider) GenerateIdeas(ctx context.Context, req IdeaRequest) ([]GiftIdea, error) {
	return MockIdeas(), nil
}
