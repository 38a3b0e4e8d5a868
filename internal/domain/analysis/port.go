package analysis

import "context"

// Repository port (interface for record storage)
type Repository interface {
	Save(ctx context.Context, rec *Record) error
	Get(ctx context.Context, id RecordID) (*Record, error)
	List(ctx context.Context) ([]ListItem, error)
	Replace(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, id RecordID) error
}
