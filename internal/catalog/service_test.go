package catalog

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

// brokenRepository fails every call, standing in for a dead database.
type brokenRepository struct{}

func (brokenRepository) List(context.Context) ([]Service, error) {
	return nil, errors.New("connection refused")
}

func (brokenRepository) GetByID(context.Context, string) (*Service, error) {
	return nil, errors.New("connection refused")
}

func (brokenRepository) ListByCategory(context.Context, string) ([]Service, error) {
	return nil, errors.New("connection refused")
}

func TestCatalogFallsBackToSampleData(t *testing.T) {
	cat := NewCatalog(brokenRepository{}, zap.NewNop())
	ctx := context.Background()

	services := cat.ListServices(ctx)
	if len(services) != 8 {
		t.Fatalf("expected 8 sample services, got %d", len(services))
	}

	svc := cat.GetService(ctx, "junk-removal")
	if svc == nil {
		t.Fatal("expected junk-removal from sample data")
	}
	if svc.NationalAverage != 250 {
		t.Errorf("national average = %v, want 250", svc.NationalAverage)
	}
}

func TestCatalogWithoutPrimary(t *testing.T) {
	cat := NewCatalog(nil, zap.NewNop())
	ctx := context.Background()

	if got := cat.GetService(ctx, "no-such-service"); got != nil {
		t.Errorf("expected nil for unknown service, got %+v", got)
	}

	cleaning := cat.ListServicesByCategory(ctx, "cleaning")
	if len(cleaning) != 3 {
		t.Fatalf("expected 3 cleaning services, got %d", len(cleaning))
	}
	for _, svc := range cleaning {
		if svc.Category != "cleaning" {
			t.Errorf("service %s has category %s", svc.ID, svc.Category)
		}
	}
}

func TestListCategoriesGroupsEveryService(t *testing.T) {
	cat := NewCatalog(nil, zap.NewNop())

	categories := cat.ListCategories(context.Background())
	if len(categories) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(categories))
	}

	total := 0
	for _, c := range categories {
		total += len(c.Services)
	}
	if total != 8 {
		t.Errorf("categories cover %d services, want 8", total)
	}
}
