package repository

import (
	"fmt"

	"github.com/abhscancode/cluedin/internal/model"
)

// StaticEventStore holds a catalog that is fixed for the process lifetime.
type StaticEventStore struct {
	events []model.Event
}

// NewStaticEventStore validates the catalog against the data category set and
// freezes it.
func NewStaticEventStore(events []model.Event, categories *model.CategorySet) (*StaticEventStore, error) {
	seen := make(map[string]struct{}, len(events))

	for i, e := range events {
		if e.ID == "" {
			return nil, fmt.Errorf("event at position %d has no id", i)
		}

		if _, ok := seen[e.ID]; ok {
			return nil, fmt.Errorf("duplicate event id %q", e.ID)
		}
		seen[e.ID] = struct{}{}

		if e.Title == "" {
			return nil, fmt.Errorf("event %q has no title", e.ID)
		}

		if e.Description == "" {
			return nil, fmt.Errorf("event %q has no description", e.ID)
		}

		if e.Date.IsZero() {
			return nil, fmt.Errorf("event %q has no date", e.ID)
		}

		if !categories.Contains(e.Category) {
			return nil, fmt.Errorf("event %q has unknown category %q", e.ID, e.Category)
		}
	}

	frozen := make([]model.Event, len(events))
	copy(frozen, events)

	return &StaticEventStore{events: frozen}, nil
}

// List returns the catalog in its defined order. The slice is a copy.
func (s *StaticEventStore) List() []model.Event {
	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out
}
