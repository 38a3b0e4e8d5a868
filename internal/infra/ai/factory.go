package ai

import (
	"fmt"
	"strings"

	"github.com/bryanwahyu/textlens/internal/config"
	domai "github.com/bryanwahyu/textlens/internal/domain/ai"
	"github.com/bryanwahyu/textlens/internal/infra/ai/ollama"
	"github.com/bryanwahyu/textlens/internal/infra/ai/openai"
)

const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// NewAnalyzer builds the configured provider client.
func NewAnalyzer(cfg *config.Config) (domai.Analyzer, error) {
	switch strings.ToLower(cfg.AI.Provider) {
	case ProviderOpenAI, "":
		return openai.NewClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model), nil
	case ProviderOllama:
		return ollama.New(cfg.AI.OllamaHost, cfg.AI.OllamaModel)
	default:
		return nil, fmt.Errorf("unknown ai provider: %s", cfg.AI.Provider)
	}
}
