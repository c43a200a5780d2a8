package catalog

import (
	"context"
	"sort"
)

// MemoryRepository serves the static sample catalog. It backs the
// fallback path and doubles as a test fixture.
type MemoryRepository struct {
	services []Service
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{services: SampleServices()}
}

func (r *MemoryRepository) List(_ context.Context) ([]Service, error) {
	out := make([]Service, len(r.services))
	copy(out, r.services)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*Service, error) {
	for _, svc := range r.services {
		if svc.ID == id {
			out := svc
			return &out, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) ListByCategory(_ context.Context, category string) ([]Service, error) {
	var out []Service
	for _, svc := range r.services {
		if svc.Category == category {
			out = append(out, svc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
