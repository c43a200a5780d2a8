package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/clf899/how-much/internal/core"
)

// Catalog answers service-catalog reads, falling back to the built-in
// sample catalog when the database is down or not configured.
type Catalog struct {
	primary  Repository // nil when no database is configured
	fallback *MemoryRepository
	logger   *zap.Logger
}

func NewCatalog(primary Repository, logger *zap.Logger) *Catalog {
	return &Catalog{
		primary:  primary,
		fallback: NewMemoryRepository(),
		logger:   logger,
	}
}

func (c *Catalog) ListServices(ctx context.Context) []Service {
	var primary func(context.Context) ([]Service, error)
	if c.primary != nil {
		primary = c.primary.List
	}

	return core.WithFallback(ctx, c.logger, "catalog.list", primary, func() []Service {
		services, _ := c.fallback.List(ctx)
		return services
	})
}

// GetService returns nil when the service id is unknown.
func (c *Catalog) GetService(ctx context.Context, id string) *Service {
	var primary func(context.Context) (*Service, error)
	if c.primary != nil {
		primary = func(ctx context.Context) (*Service, error) {
			return c.primary.GetByID(ctx, id)
		}
	}

	return core.WithFallback(ctx, c.logger, "catalog.get", primary, func() *Service {
		svc, _ := c.fallback.GetByID(ctx, id)
		return svc
	})
}

func (c *Catalog) ListServicesByCategory(ctx context.Context, category string) []Service {
	var primary func(context.Context) ([]Service, error)
	if c.primary != nil {
		primary = func(ctx context.Context) ([]Service, error) {
			return c.primary.ListByCategory(ctx, category)
		}
	}

	return core.WithFallback(ctx, c.logger, "catalog.list_by_category", primary, func() []Service {
		services, _ := c.fallback.ListByCategory(ctx, category)
		return services
	})
}

// ListCategories groups the catalog into the fixed browse categories.
func (c *Catalog) ListCategories(ctx context.Context) []Category {
	services := c.ListServices(ctx)

	categories := make([]Category, 0, len(categoryNames))
	for _, cat := range categoryNames {
		grouped := Category{ID: cat.ID, Name: cat.Name, Services: []Service{}}
		for _, svc := range services {
			if svc.Category == cat.ID {
				grouped.Services = append(grouped.Services, svc)
			}
		}
		categories = append(categories, grouped)
	}

	return categories
}
