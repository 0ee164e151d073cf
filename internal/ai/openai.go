package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ErrNoAPIKey signals an unconfigured provider. Expected, not a failure:
// callers fall back to MockIdeas without logging an error.
var ErrNoAPIKey = fmt.Errorf("ai: api key not configured")

// OpenAIProvider generates ideas through the OpenAI Chat Completions API.
type OpenAIProvider struct {
	apiKey string
	model  string
	client *openai.Client
}

func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	return &OpenAIProvider{apiKey: strings.TrimSpace(apiKey), model: strings.TrimSpace(model)}
}

func (p *OpenAIProvider) ensureClient() error {
	if strings.TrimSpace(p.apiKey) == "" {
		return ErrNoAPIKey
	}
	if p.client == nil {
		c := openai.NewClient(option.WithAPIKey(p.apiKey))
		p.client = &c
	}
	return nil
}

func (p *OpenAIProvider) SetAPIKey(key string) {
	p.apiKey = strings.TrimSpace(key)
	p.client = nil
}

func (p *OpenAIProvider) SetModel(model string) {
	p.model = strings.TrimSpace(model)
}

// GenerateIdeas asks the model for 3 structured gift ideas. The response is
// parsed defensively; a response with no recognizable idea array yields an
// empty slice and no error.
func (p *OpenAIProvider) GenerateIdeas(ctx context.Context, req IdeaRequest) ([]GiftIdea, error) {
	if err := p.ensureClient(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	model := p.model
	if model == "" {
		model = "gpt-4o-mini"
	}

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(BuildPrompt(req)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("ai: generate ideas: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("ai: empty response")
	}
	return extractIdeas(resp.Choices[0].Message.Content), nil
}

// BuildPrompt renders the idea-generation instruction.
func BuildPrompt(req IdeaRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Suggest 3 specific gift ideas for a %s year old %s for a %s.\n",
		req.Age, req.Relation, req.Occasion)
	fmt.Fprintf(&b, "The budget is %s.\n", budgetPhrase(req.BudgetMin, req.BudgetMax))
	if len(req.Liked) > 0 {
		fmt.Fprintf(&b, "The user expressed interest in: %s.\n", strings.Join(req.Liked, ", "))
	}
	b.WriteString(`Return a JSON object with a "suggestions" key containing an array of 3 objects. `)
	b.WriteString(`Each object must have "title", "query" (a specific 3-5 word product search term), and "reason".`)
	return b.String()
}

func budgetPhrase(min, max float64) string {
	if max > 500 {
		return fmt.Sprintf("over $%.0f", min)
	}
	return fmt.Sprintf("$%.0f to $%.0f", min, max)
}
