package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domai "github.com/bryanwahyu/textlens/internal/domain/ai"
	"github.com/bryanwahyu/textlens/internal/domain/analysis"
)

const validReply = `{
	"summary": "Kısa bir özet. İki cümlelik.",
	"keyIdeas": ["birinci fikir", "ikinci fikir", "üçüncü fikir"],
	"sentiment": "Positive",
	"rewrittenText": "Yeniden yazılmış metin."
}`

func TestParseValidReply(t *testing.T) {
	p, err := Parse(validReply)
	require.NoError(t, err)
	assert.Equal(t, "Kısa bir özet. İki cümlelik.", p.Summary)
	assert.Len(t, p.KeyIdeas, 3)
	assert.Equal(t, analysis.SentimentPositive, p.Sentiment)
	assert.NotEmpty(t, p.RewrittenText)
}

func TestParseStripsCodeFences(t *testing.T) {
	p, err := Parse("```json\n" + validReply + "\n```")
	require.NoError(t, err)
	assert.Equal(t, analysis.SentimentPositive, p.Sentiment)
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse("not json at all")
	require.Error(t, err)
	assert.True(t, domai.IsSchemaError(err))
}

func TestParseMissingField(t *testing.T) {
	_, err := Parse(`{
		"summary": "özet",
		"keyIdeas": ["fikir"],
		"sentiment": "Neutral"
	}`)
	require.Error(t, err)
	assert.True(t, domai.IsSchemaError(err))
}

func TestParseEmptyKeyIdeas(t *testing.T) {
	_, err := Parse(`{
		"summary": "özet",
		"keyIdeas": [],
		"sentiment": "Neutral",
		"rewrittenText": "metin"
	}`)
	require.Error(t, err)
	assert.True(t, domai.IsSchemaError(err))
}

func TestParseBadSentiment(t *testing.T) {
	_, err := Parse(`{
		"summary": "özet",
		"keyIdeas": ["a", "b", "c"],
		"sentiment": "Happy",
		"rewrittenText": "metin"
	}`)
	require.Error(t, err)
	assert.True(t, domai.IsSchemaError(err))
}

func TestUserPromptEmbedsText(t *testing.T) {
	assert.Contains(t, UserPrompt("Test cümlesi."), "Test cümlesi.")
}

func TestSystemPromptNamesContract(t *testing.T) {
	sys := SystemPrompt()
	for _, field := range []string{"summary", "keyIdeas", "sentiment", "rewrittenText"} {
		assert.Contains(t, sys, field)
	}
	for _, label := range []string{"Positive", "Negative", "Neutral"} {
		assert.Contains(t, sys, label)
	}
}
