package analysis

import (
	"time"
)

// ID tipe untuk Record
type RecordID string

// Sentiment enum, fixed by contract with the AI provider
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// Payload is the four-field analysis produced by the provider.
// All fields are mandatory in the response contract.
type Payload struct {
	Summary       string    `json:"summary"`
	KeyIdeas      []string  `json:"keyIdeas"`
	Sentiment     Sentiment `json:"sentiment"`
	RewrittenText string    `json:"rewrittenText"`
}

// Aggregate Root: Record
type Record struct {
	ID        RecordID  `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Analysis  Payload   `json:"analysis"`
}

// ListItem is the lightweight projection used in list responses.
type ListItem struct {
	ID        RecordID  `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}
