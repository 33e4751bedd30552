package handler

type EventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Summary     string `json:"summary"`
	Date        string `json:"date"`
	Timing      string `json:"timing"`
	Category    string `json:"category"`
	Source      string `json:"source,omitempty"`
}

type EventsResponse struct {
	Events   []EventResponse `json:"events"`
	Total    int             `json:"total"`
	Category string          `json:"category"`
}

type CategoriesResponse struct {
	Set        string   `json:"set"`
	Categories []string `json:"categories"`
}

type SuggestCategoriesRequest struct {
	EventDescription string `json:"eventDescription" binding:"required"`
}

type SuggestCategoriesResponse struct {
	Categories []string `json:"categories"`
}

type FailureResponse struct {
	EventID  string `json:"event_id"`
	Title    string `json:"title"`
	Reason   string `json:"reason"`
	FailedAt string `json:"failed_at"`
}

type FailuresResponse struct {
	Failures []FailureResponse `json:"failures"`
	Limit    int               `json:"limit"`
}
