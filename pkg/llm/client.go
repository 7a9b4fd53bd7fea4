package llm

import (
	"fmt"
	"os"
	"strings"
)

type ComplaintContext struct {
	Location   string
	Text       string
	Category   string
	Similarity int
}

type NewsContext struct {
	Title   string
	Link    string
	Snippet string
}

type SummaryInput struct {
	Location   string
	Problem    string
	Complaints []ComplaintContext
	News       []NewsContext
}

type SummaryClient interface {
	Summarize(input SummaryInput) (string, error)
	ModelName() string
}

// NewFromEnv selects a generation provider from LLM_PROVIDER. Gemini is the
// default; each provider reads its own API key.
func NewFromEnv() (SummaryClient, error) {
	provider := strings.ToLower(os.Getenv("LLM_PROVIDER"))
	switch provider {
	case "", "gemini":
		key := os.Getenv("GEMINI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set")
		}
		return NewGeminiClient(key)
	case "openai":
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		return NewOpenAIClient(key), nil
	case "anthropic":
		key := os.Getenv("ANTHROPIC_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is not set")
		}
		return NewAnthropicClient(key), nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", provider)
	}
}
