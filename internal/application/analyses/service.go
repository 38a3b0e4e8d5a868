package analyses

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/bryanwahyu/textlens/internal/application"
	domai "github.com/bryanwahyu/textlens/internal/domain/ai"
	domain "github.com/bryanwahyu/textlens/internal/domain/analysis"
)

// Service implements the use-cases for analysis records.
// Safe for concurrent use as long as the Repository is.
type Service struct {
	Repo     domain.Repository
	Analyzer domai.Analyzer
	Clock    application.Clock
}

// Create validates the text, asks the provider for an analysis and inserts
// a fresh record. Nothing is written when the provider call fails.
func (s *Service) Create(ctx context.Context, text string) (*domain.Record, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyText
	}

	payload, err := s.Analyzer.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	rec := &domain.Record{
		ID:        domain.RecordID(uuid.New().String()),
		Timestamp: s.Clock.Now().UTC(),
		Analysis:  *payload,
	}
	if err := s.Repo.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns a single record by id.
func (s *Service) Get(ctx context.Context, id domain.RecordID) (*domain.Record, error) {
	if id == "" {
		return nil, domain.ErrMissingID
	}
	return s.Repo.Get(ctx, id)
}

// List returns {id, timestamp} projections in insertion order.
func (s *Service) List(ctx context.Context) ([]domain.ListItem, error) {
	return s.Repo.List(ctx)
}

// Update re-analyzes the text and replaces analysis+timestamp in place.
// The existence check runs before the provider call, and a provider failure
// leaves the stored record untouched.
func (s *Service) Update(ctx context.Context, id domain.RecordID, text string) (*domain.Record, error) {
	if id == "" {
		return nil, domain.ErrMissingID
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyText
	}

	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, err := s.Analyzer.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	rec := &domain.Record{
		ID:        existing.ID,
		Timestamp: s.Clock.Now().UTC(),
		Analysis:  *payload,
	}
	if err := s.Repo.Replace(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete removes a record by id.
func (s *Service) Delete(ctx context.Context, id domain.RecordID) error {
	if id == "" {
		return domain.ErrMissingID
	}
	return s.Repo.Delete(ctx, id)
}
