package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clf899/how-much/internal/catalog"
	"github.com/clf899/how-much/internal/pricing"
)

func testEngine(adminKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	cat := catalog.NewCatalog(nil, logger)
	svc := pricing.NewService(nil, cat, nil, 0, logger)

	return New(Deps{
		Catalog:     catalog.NewHandler(cat),
		Pricing:     pricing.NewHandler(svc, nil, logger),
		AdminAPIKey: adminKey,
		Logger:      logger,
	})
}

func TestHealthCheck(t *testing.T) {
	r := testEngine("")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestServicesServedFromSampleData(t *testing.T) {
	r := testEngine("")

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var services []catalog.Service
	if err := json.Unmarshal(w.Body.Bytes(), &services); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(services) != 8 {
		t.Fatalf("expected 8 sample services, got %d", len(services))
	}
}

func TestAdminRoutesDisabledWithoutKey(t *testing.T) {
	r := testEngine("")

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when admin key unset, got %d", w.Code)
	}
}

func TestAdminRoutesGuardedByKey(t *testing.T) {
	r := testEngine("hunter2")

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without key header, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("X-Admin-Key", "hunter2")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid key, got %d", w.Code)
	}
}
