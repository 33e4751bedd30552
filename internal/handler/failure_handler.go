package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/abhscancode/cluedin/internal/model"
	"github.com/gin-gonic/gin"
)

type FailureStore interface {
	RecentFailures(ctx context.Context, limit int) ([]model.EnrichmentFailure, error)
}

type FailureHandler struct {
	repository FailureStore
}

// NewFailureHandler accepts a nil store; the endpoint then reports that the
// failure log is not configured.
func NewFailureHandler(repository FailureStore) *FailureHandler {
	return &FailureHandler{repository: repository}
}

func (h *FailureHandler) GetFailures(c *gin.Context) {
	if h.repository == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failure log not configured"})
		return
	}

	limit := getQueryLimit(c)

	failures, err := h.repository.RecentFailures(c.Request.Context(), limit)
	if err != nil {
		slog.Error("error fetching enrichment failures", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failure log error"})
		return
	}

	res := make([]FailureResponse, 0, len(failures))
	for _, f := range failures {
		res = append(res, FailureResponse{
			EventID:  f.EventID,
			Title:    f.Title,
			Reason:   f.Reason,
			FailedAt: f.FailedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, FailuresResponse{Failures: res, Limit: limit})
}
