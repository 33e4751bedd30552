package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/abhscancode/cluedin/internal/metrics"
	"github.com/abhscancode/cluedin/pkg/llm"
	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	suggester llm.CategorySuggester
	metrics   *metrics.Metrics
}

func NewCategoryHandler(suggester llm.CategorySuggester, m *metrics.Metrics) *CategoryHandler {
	return &CategoryHandler{suggester: suggester, metrics: m}
}

func (h *CategoryHandler) SuggestCategories(c *gin.Context) {
	var req SuggestCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.EventDescription) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "eventDescription is required"})
		return
	}

	categories, err := h.suggester.SuggestCategories(c.Request.Context(), req.EventDescription)
	if err != nil {
		slog.Error("error suggesting categories", "error", err)
		h.observe(metrics.OutcomeError)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Category suggestion unavailable"})
		return
	}

	h.observe(metrics.OutcomeSuccess)

	if categories == nil {
		categories = []string{}
	}

	c.JSON(http.StatusOK, SuggestCategoriesResponse{Categories: categories})
}

func (h *CategoryHandler) observe(outcome string) {
	if h.metrics != nil {
		h.metrics.ObserveCategorySuggestion(outcome)
	}
}
