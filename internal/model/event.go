package model

import "time"

const FallbackSummary = "Summary currently unavailable. Please check back later."

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Summary     string    `json:"summary"`
	Date        time.Time `json:"date"`
	Category    Category  `json:"category"`
	Source      string    `json:"source,omitempty"`
}

// EnrichmentFailure describes one summary call that fell back to FallbackSummary.
type EnrichmentFailure struct {
	EventID  string    `json:"event_id"`
	Title    string    `json:"title"`
	Reason   string    `json:"reason"`
	FailedAt time.Time `json:"failed_at"`
}
