// Package feed holds the read-side projection of enriched events: category
// filtering, date ordering and the upcoming/past label shown next to a date.
package feed

import (
	"sort"
	"time"

	"github.com/abhscancode/cluedin/internal/model"
)

const (
	TimingUpcoming = "upcoming"
	TimingPast     = "past"
)

func FilterByCategory(events []model.Event, category string) []model.Event {
	if category == "" || category == model.AllCategories {
		out := make([]model.Event, len(events))
		copy(out, events)
		return out
	}

	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if string(e.Category) == category {
			out = append(out, e)
		}
	}
	return out
}

// SortByDateDesc returns a copy ordered from the latest date to the earliest.
// Events with equal dates keep their relative order.
func SortByDateDesc(events []model.Event) []model.Event {
	out := make([]model.Event, len(events))
	copy(out, events)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func Project(events []model.Event, category string) []model.Event {
	return SortByDateDesc(FilterByCategory(events, category))
}

func Timing(date, now time.Time) string {
	if date.After(now) {
		return TimingUpcoming
	}
	return TimingPast
}
