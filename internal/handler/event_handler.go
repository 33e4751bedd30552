package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/abhscancode/cluedin/internal/feed"
	"github.com/abhscancode/cluedin/internal/model"
	"github.com/gin-gonic/gin"
)

type EventPipeline interface {
	GetEnrichedEvents(ctx context.Context) []model.Event
}

type EventHandler struct {
	pipeline         EventPipeline
	dataCategories   *model.CategorySet
	filterCategories *model.CategorySet
	now              func() time.Time
}

func NewEventHandler(pipeline EventPipeline, dataCategories, filterCategories *model.CategorySet) *EventHandler {
	return &EventHandler{
		pipeline:         pipeline,
		dataCategories:   dataCategories,
		filterCategories: filterCategories,
		now:              time.Now,
	}
}

func (h *EventHandler) GetEvents(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		category = model.AllCategories
	}

	if category != model.AllCategories && !h.dataCategories.Contains(model.Category(category)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	events := feed.Project(h.pipeline.GetEnrichedEvents(c.Request.Context()), category)
	now := h.now()

	eventRes := make([]EventResponse, 0, len(events))
	for _, e := range events {
		eventRes = append(eventRes, EventResponse{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Summary:     e.Summary,
			Date:        e.Date.Format(time.RFC3339),
			Timing:      feed.Timing(e.Date, now),
			Category:    string(e.Category),
			Source:      e.Source,
		})
	}

	c.JSON(http.StatusOK, EventsResponse{
		Events:   eventRes,
		Total:    len(eventRes),
		Category: category,
	})
}

func (h *EventHandler) GetCategories(c *gin.Context) {
	set := c.DefaultQuery("set", "filter")

	switch set {
	case "filter":
		c.JSON(http.StatusOK, CategoriesResponse{Set: set, Categories: h.filterCategories.Strings()})
	case "data":
		c.JSON(http.StatusOK, CategoriesResponse{Set: set, Categories: h.dataCategories.Strings()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category set"})
	}
}
