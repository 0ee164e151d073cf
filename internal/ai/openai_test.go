package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenAIProviderRequiresKey(t *testing.T) {
	t.Parallel()

	p := NewOpenAIProvider("", "gpt-4o-mini")
	_, err := p.GenerateIdeas(context.Background(), IdeaRequest{})
	require.ErrorIs(t, err, ErrNoAPIKey)

	p = NewOpenAIProvider("   ", "gpt-4o-mini")
	_, err = p.GenerateIdeas(context.Background(), IdeaRequest{})
	require.ErrorIs(t, err, ErrNoAPIKey)
}

func TestMockIdeasFixedSet(t *testing.T) {
	t.Parallel()

	ideas, err := MockProvider{}.GenerateIdeas(context.Background(), IdeaRequest{
		Relation: "Friend", Age: "30", Occasion: "Birthday",
	})
	require.NoError(t, err)
	require.Len(t, ideas, 3)
	require.Equal(t, "Instant Camera", ideas[0].Title)
	require.Equal(t, "Fujifilm Instax Mini 12", ideas[0].Query)

	// independent of recipient and preferences
	again, err := MockProvider{}.GenerateIdeas(context.Background(), IdeaRequest{Liked: []string{"tech"}})
	require.NoError(t, err)
	require.Equal(t, ideas, again)
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	prompt := BuildPrompt(IdeaRequest{
		Relation:  "Friend",
		Age:       "30",
		Occasion:  "Birthday",
		BudgetMin: 25,
		BudgetMax: 50,
		Liked:     []string{"foodie", "social"},
	})
	require.Contains(t, prompt, "30 year old Friend for a Birthday")
	require.Contains(t, prompt, "$25 to $50")
	require.Contains(t, prompt, "foodie, social")
	require.Contains(t, prompt, `"suggestions"`)
}

func TestBuildPromptOpenEndedBudget(t *testing.T) {
	t.Parallel()

	prompt := BuildPrompt(IdeaRequest{Relation: "Partner", Age: "40", Occasion: "Anniversary", BudgetMin: 250, BudgetMax: 1000})
	require.Contains(t, prompt, "over $250")
	require.NotContains(t, prompt, "expressed interest")
}
