package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	domai "github.com/bryanwahyu/textlens/internal/domain/ai"
	"github.com/bryanwahyu/textlens/internal/domain/analysis"
)

// SystemPrompt provides strict directions and schema for JSON output.
func SystemPrompt() string {
	return `You are an expert text analyst. You must produce one valid JSON object only (no markdown, no commentary, no code fences) that follows the schema below.

Requirements:
- Output must be a single JSON object with exactly these four fields, all mandatory.
- "summary" is a 2-3 sentence summary of the text.
- "keyIdeas" is an array of 3 to 5 short strings, each one key idea.
- "sentiment" must be exactly one of: "Positive", "Negative", "Neutral".
- "rewrittenText" is a stylistic rewrite of the full input in clearer, more fluent wording.
- Write summary, keyIdeas and rewrittenText in the same language as the input text. The input is usually Turkish.

Schema (example with empty values):
{
  "summary": "<string>",
  "keyIdeas": ["<string>", "<string>", "<string>"],
  "sentiment": "<Positive|Negative|Neutral>",
  "rewrittenText": "<string>"
}`
}

// UserPrompt builds the instruction around the input text.
func UserPrompt(text string) string {
	return fmt.Sprintf("Summarize the following text, extract its key ideas, judge its overall sentiment, and rewrite it. Respond with the JSON per schema only.\n\nText:\n%s", text)
}

// Parse turns a raw provider reply into a validated payload. Models
// occasionally wrap the JSON in code fences despite instructions, so
// fences are stripped before decoding. Any violation of the four-field
// contract comes back as *ai.SchemaError.
func Parse(raw string) (*analysis.Payload, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var p analysis.Payload
	if err := json.Unmarshal([]byte(cleaned), &p); err != nil {
		return nil, &domai.SchemaError{Reason: "provider reply is not valid JSON", Err: err}
	}
	if err := validatePayload(&p); err != nil {
		return nil, &domai.SchemaError{Reason: "provider reply violates the response contract", Err: err}
	}
	return &p, nil
}

func validatePayload(p *analysis.Payload) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Summary, validation.Required),
		validation.Field(&p.KeyIdeas, validation.Required, validation.Length(1, 0)),
		validation.Field(&p.Sentiment, validation.Required, validation.In(
			analysis.SentimentPositive,
			analysis.SentimentNegative,
			analysis.SentimentNeutral,
		)),
		validation.Field(&p.RewrittenText, validation.Required),
	)
}
