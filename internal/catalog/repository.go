package catalog

import "context"

type Repository interface {
	List(ctx context.Context) ([]Service, error)

	// GetByID returns (nil, nil) when the service does not exist.
	GetByID(ctx context.Context, id string) (*Service, error)

	ListByCategory(ctx context.Context, category string) ([]Service, error)
}
