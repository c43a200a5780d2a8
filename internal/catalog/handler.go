package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// --------------------------------------------------
// List all services
// --------------------------------------------------
func (h *Handler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.ListServices(c.Request.Context()))
}

// --------------------------------------------------
// Get one service
// --------------------------------------------------
func (h *Handler) GetService(c *gin.Context) {
	svc := h.catalog.GetService(c.Request.Context(), c.Param("id"))
	if svc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}

	c.JSON(http.StatusOK, svc)
}

// --------------------------------------------------
// List browse categories with their services
// --------------------------------------------------
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.ListCategories(c.Request.Context()))
}

// --------------------------------------------------
// List services in one category
// --------------------------------------------------
func (h *Handler) ListServicesByCategory(c *gin.Context) {
	services := h.catalog.ListServicesByCategory(c.Request.Context(), c.Param("id"))
	if services == nil {
		services = []Service{}
	}

	c.JSON(http.StatusOK, services)
}
