package ollama

import (
	"context"
	"fmt"
	"net/url"

	"github.com/JexSrs/go-ollama"

	"github.com/bryanwahyu/textlens/internal/domain/analysis"
	"github.com/bryanwahyu/textlens/internal/infra/ai/prompt"
)

// Client runs the analysis against a local Ollama instance.
// No credential is required for this provider.
type Client struct {
	client *ollama.Ollama
	model  string
}

func New(host, model string) (*Client, error) {
	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}
	return &Client{client: ollama.New(*u), model: model}, nil
}

func (c *Client) Analyze(_ context.Context, text string) (*analysis.Payload, error) {
	res, err := c.client.Generate(
		c.client.Generate.WithModel(c.model),
		c.client.Generate.WithSystem(prompt.SystemPrompt()),
		c.client.Generate.WithPrompt(prompt.UserPrompt(text)),
	)
	if err != nil {
		return nil, fmt.Errorf("ollama generate failed: %w", err)
	}
	if !res.Done || res.Response == "" {
		return nil, fmt.Errorf("ollama returned an empty or unfinished response")
	}

	return prompt.Parse(res.Response)
}
