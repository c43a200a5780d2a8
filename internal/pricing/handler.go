package pricing

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReceiptStore uploads receipt images and returns their public URL.
type ReceiptStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Handler struct {
	service  *Service
	receipts ReceiptStore // nil when storage is not configured
	logger   *zap.Logger
}

func NewHandler(service *Service, receipts ReceiptStore, logger *zap.Logger) *Handler {
	return &Handler{service: service, receipts: receipts, logger: logger}
}

// --------------------------------------------------
// Submit a price data point
// --------------------------------------------------
// Accepts JSON, or multipart form with an optional "receipt" image.
func (h *Handler) SubmitPrice(c *gin.Context) {
	var req SubmitRequest

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		price, err := strconv.ParseFloat(c.PostForm("price"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
			return
		}

		req = SubmitRequest{
			ServiceID:   c.PostForm("serviceId"),
			Price:       price,
			Location:    c.PostForm("location"),
			Description: c.PostForm("description"),
			ServiceDate: c.PostForm("serviceDate"),
		}

		if file, err := c.FormFile("receipt"); err == nil && h.receipts != nil {
			req.Receipt = h.uploadReceipt(c, file)
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	obs, err := h.service.SubmitPrice(c.Request.Context(), req)
	if err != nil {
		if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "invalid") ||
			strings.Contains(err.Error(), "positive") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "price submission failed, please try again"})
		return
	}

	c.JSON(http.StatusCreated, obs)
}

// uploadReceipt pushes the receipt image to storage. A failed upload
// only loses the receipt; the price itself is still worth recording.
func (h *Handler) uploadReceipt(c *gin.Context, file *multipart.FileHeader) string {
	f, err := file.Open()
	if err != nil {
		h.logger.Warn("could not open receipt upload", zap.Error(err))
		return ""
	}
	defer f.Close()

	key := fmt.Sprintf("receipts/%s%s", uuid.New().String(), filepath.Ext(file.Filename))
	url, err := h.receipts.Upload(c.Request.Context(), key, f, file.Header.Get("Content-Type"))
	if err != nil {
		h.logger.Warn("receipt upload failed", zap.Error(err))
		return ""
	}

	return url
}

// --------------------------------------------------
// List observations for a service + location
// --------------------------------------------------
func (h *Handler) GetObservations(c *gin.Context) {
	locationQuery := c.Query("location")
	if locationQuery == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location query parameter required"})
		return
	}

	observations := h.service.GetObservations(c.Request.Context(), c.Param("id"), locationQuery)
	if observations == nil {
		observations = []PriceObservation{}
	}

	c.JSON(http.StatusOK, observations)
}

// --------------------------------------------------
// Price summary for a service + location
// --------------------------------------------------
func (h *Handler) GetSummary(c *gin.Context) {
	locationQuery := c.Query("location")
	if locationQuery == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location query parameter required"})
		return
	}

	summary := h.service.GetSummary(c.Request.Context(), c.Param("id"), locationQuery)
	if summary == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no data available"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// --------------------------------------------------
// Comprehensive pricing: scraped + sample + database
// --------------------------------------------------
func (h *Handler) GetComprehensivePricing(c *gin.Context) {
	locationQuery := c.Query("location")
	if locationQuery == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location query parameter required"})
		return
	}

	result := h.service.GetComprehensivePricing(c.Request.Context(), c.Param("id"), locationQuery)
	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// ADMIN: Trigger a scrape run for a service + location
// --------------------------------------------------
func (h *Handler) ScrapeAndSave(c *gin.Context) {
	var req struct {
		ServiceID string `json:"serviceId"`
		Location  string `json:"location"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.ServiceID == "" || req.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceId and location required"})
		return
	}

	c.JSON(http.StatusOK, h.service.ScrapeAndSave(c.Request.Context(), req.ServiceID, req.Location))
}

// --------------------------------------------------
// ADMIN: Data source statistics
// --------------------------------------------------
func (h *Handler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Stats(c.Request.Context()))
}
