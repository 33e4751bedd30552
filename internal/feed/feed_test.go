package feed

import (
	"testing"
	"time"

	"github.com/abhscancode/cluedin/internal/model"
	"github.com/go-playground/assert/v2"
)

var base = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

func events() []model.Event {
	return []model.Event{
		{ID: "1", Date: base.AddDate(0, 0, 30), Category: model.CategoryGovernance},
		{ID: "2", Date: base.AddDate(0, 0, 7), Category: model.CategoryEntertainment},
		{ID: "4", Date: base.AddDate(0, 0, -5), Category: model.CategoryCulture},
		{ID: "6", Date: base.AddDate(0, 0, 60), Category: model.CategoryEntertainment},
		{ID: "7", Date: base.AddDate(0, 0, -10), Category: model.CategoryGovernance},
	}
}

func ids(events []model.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func TestFilterByCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     []string
	}{
		{name: "empty keeps everything", category: "", want: []string{"1", "2", "4", "6", "7"}},
		{name: "All keeps everything", category: "All", want: []string{"1", "2", "4", "6", "7"}},
		{name: "exact match", category: "Entertainment", want: []string{"2", "6"}},
		{name: "no match", category: "Sports", want: []string{}},
		{name: "case sensitive", category: "governance", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterByCategory(events(), tt.category)))
		})
	}
}

func TestSortByDateDesc(t *testing.T) {
	in := events()

	got := SortByDateDesc(in)

	assert.Equal(t, []string{"6", "1", "2", "4", "7"}, ids(got))
	assert.Equal(t, []string{"1", "2", "4", "6", "7"}, ids(in))
}

func TestSortByDateDesc_StableForEqualDates(t *testing.T) {
	in := []model.Event{
		{ID: "a", Date: base},
		{ID: "b", Date: base},
		{ID: "c", Date: base.Add(time.Hour)},
	}

	assert.Equal(t, []string{"c", "a", "b"}, ids(SortByDateDesc(in)))
}

func TestProject(t *testing.T) {
	assert.Equal(t, []string{"1", "7"}, ids(Project(events(), "Governance")))
	assert.Equal(t, []string{"6", "1", "2", "4", "7"}, ids(Project(events(), "All")))
}

func TestTiming(t *testing.T) {
	assert.Equal(t, TimingUpcoming, Timing(base.Add(time.Minute), base))
	assert.Equal(t, TimingPast, Timing(base.Add(-time.Minute), base))
	assert.Equal(t, TimingPast, Timing(base, base))
}
