package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/abhscancode/cluedin/internal/metrics"
	"github.com/abhscancode/cluedin/internal/model"
	"github.com/abhscancode/cluedin/pkg/llm"
	"github.com/go-playground/assert/v2"
)

type fakeStore struct {
	events []model.Event
}

func (f *fakeStore) List() []model.Event {
	out := make([]model.Event, len(f.events))
	copy(out, f.events)
	return out
}

type result struct {
	summary string
	err     error
}

type fakeSummarizer struct {
	results map[string]result
	calls   atomic.Int32
}

func (f *fakeSummarizer) Summarize(ctx context.Context, description string) (string, error) {
	f.calls.Add(1)
	r, ok := f.results[description]
	if !ok {
		return "", fmt.Errorf("unexpected description %q", description)
	}
	return r.summary, r.err
}

type summarizerFunc func(ctx context.Context, description string) (string, error)

func (f summarizerFunc) Summarize(ctx context.Context, description string) (string, error) {
	return f(ctx, description)
}

type fakeRecorder struct {
	mu       sync.Mutex
	failures []model.EnrichmentFailure
	err      error
}

func (f *fakeRecorder) RecordFailure(ctx context.Context, failure model.EnrichmentFailure) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = append(f.failures, failure)
	return f.err
}

func event(id, description string) model.Event {
	return model.Event{
		ID:          id,
		Title:       "Event " + id,
		Description: description,
		Date:        time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC),
		Category:    model.CategorySociety,
	}
}

func TestGetEnrichedEvents_FallbackForFailedEvent(t *testing.T) {
	store := &fakeStore{events: []model.Event{event("1", "D1"), event("2", "D2")}}
	summarizer := &fakeSummarizer{results: map[string]result{
		"D1": {summary: "S1"},
		"D2": {err: errors.New("provider timeout")},
	}}
	recorder := &fakeRecorder{}

	p := New(store, summarizer, WithFailureRecorder(recorder))
	got := p.GetEnrichedEvents(t.Context())

	assert.Equal(t, 2, len(got))
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "S1", got[0].Summary)
	assert.Equal(t, "2", got[1].ID)
	assert.Equal(t, model.FallbackSummary, got[1].Summary)

	assert.Equal(t, 1, len(recorder.failures))
	assert.Equal(t, "2", recorder.failures[0].EventID)
	assert.Equal(t, "Event 2", recorder.failures[0].Title)
	assert.Equal(t, "provider timeout", recorder.failures[0].Reason)
}

func TestGetEnrichedEvents_EmptyStore(t *testing.T) {
	summarizer := &fakeSummarizer{}

	got := New(&fakeStore{}, summarizer).GetEnrichedEvents(t.Context())

	assert.Equal(t, 0, len(got))
	assert.Equal(t, int32(0), summarizer.calls.Load())
}

func TestGetEnrichedEvents_SchemaViolationIsAbsorbed(t *testing.T) {
	store := &fakeStore{events: []model.Event{event("1", "D1"), event("2", "D2")}}
	summarizer := &fakeSummarizer{results: map[string]result{
		"D1": {err: fmt.Errorf("%w: missing summary field", llm.ErrSchemaViolation)},
		"D2": {summary: "S2"},
	}}

	got := New(store, summarizer).GetEnrichedEvents(t.Context())

	assert.Equal(t, model.FallbackSummary, got[0].Summary)
	assert.Equal(t, "S2", got[1].Summary)
}

func TestGetEnrichedEvents_AllSucceed(t *testing.T) {
	var events []model.Event
	results := map[string]result{}
	for i := 0; i < 25; i++ {
		id := fmt.Sprint(i)
		events = append(events, event(id, "D"+id))
		results["D"+id] = result{summary: "S" + id}
	}

	got := New(&fakeStore{events: events}, &fakeSummarizer{results: results}).GetEnrichedEvents(t.Context())

	assert.Equal(t, len(events), len(got))
	for i, e := range got {
		assert.Equal(t, events[i].ID, e.ID)
		assert.Equal(t, "S"+e.ID, e.Summary)
		assert.Equal(t, events[i].Description, e.Description)
	}
}

func TestGetEnrichedEvents_KeepsOrderWhenCompletionIsReversed(t *testing.T) {
	store := &fakeStore{events: []model.Event{event("1", "D1"), event("2", "D2"), event("3", "D3")}}

	secondDone := make(chan struct{})
	thirdDone := make(chan struct{})
	summarizer := summarizerFunc(func(ctx context.Context, description string) (string, error) {
		switch description {
		case "D1":
			<-secondDone
		case "D2":
			defer close(secondDone)
			<-thirdDone
		case "D3":
			defer close(thirdDone)
		}
		return "S" + description[1:], nil
	})

	got := New(store, summarizer).GetEnrichedEvents(t.Context())

	assert.Equal(t, "S1", got[0].Summary)
	assert.Equal(t, "S2", got[1].Summary)
	assert.Equal(t, "S3", got[2].Summary)
}

func TestGetEnrichedEvents_RespectsConcurrencyLimit(t *testing.T) {
	var events []model.Event
	for i := 0; i < 12; i++ {
		events = append(events, event(fmt.Sprint(i), fmt.Sprint("D", i)))
	}

	var inFlight, peak atomic.Int32
	summarizer := summarizerFunc(func(ctx context.Context, description string) (string, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		return "ok", nil
	})

	got := New(&fakeStore{events: events}, summarizer, WithConcurrency(3)).GetEnrichedEvents(t.Context())

	assert.Equal(t, 12, len(got))
	assert.Equal(t, true, peak.Load() <= 3)
}

func TestGetEnrichedEvents_PanicBecomesFallback(t *testing.T) {
	store := &fakeStore{events: []model.Event{event("1", "D1"), event("2", "D2")}}
	summarizer := summarizerFunc(func(ctx context.Context, description string) (string, error) {
		if description == "D1" {
			panic("nil response")
		}
		return "S2", nil
	})

	got := New(store, summarizer).GetEnrichedEvents(t.Context())

	assert.Equal(t, model.FallbackSummary, got[0].Summary)
	assert.Equal(t, "S2", got[1].Summary)
}

func TestGetEnrichedEvents_DoesNotMutateStore(t *testing.T) {
	store := &fakeStore{events: []model.Event{event("1", "D1")}}
	summarizer := &fakeSummarizer{results: map[string]result{"D1": {summary: "S1"}}}

	New(store, summarizer).GetEnrichedEvents(t.Context())

	assert.Equal(t, "", store.events[0].Summary)
}

func TestGetEnrichedEvents_RecorderErrorIsIgnored(t *testing.T) {
	store := &fakeStore{events: []model.Event{event("1", "D1")}}
	summarizer := &fakeSummarizer{results: map[string]result{"D1": {err: errors.New("quota")}}}
	recorder := &fakeRecorder{err: errors.New("redis down")}

	got := New(store, summarizer, WithFailureRecorder(recorder)).GetEnrichedEvents(t.Context())

	assert.Equal(t, model.FallbackSummary, got[0].Summary)
	assert.Equal(t, 1, len(recorder.failures))
}

func TestGetEnrichedEvents_CancelledContextFallsBack(t *testing.T) {
	store := &fakeStore{events: []model.Event{event("1", "D1"), event("2", "D2")}}
	summarizer := summarizerFunc(func(ctx context.Context, description string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	got := New(store, summarizer).GetEnrichedEvents(ctx)

	assert.Equal(t, 2, len(got))
	assert.Equal(t, model.FallbackSummary, got[0].Summary)
	assert.Equal(t, model.FallbackSummary, got[1].Summary)
}

func TestGetEnrichedEvents_Metrics(t *testing.T) {
	store := &fakeStore{events: []model.Event{event("1", "D1"), event("2", "D2"), event("3", "D3")}}
	summarizer := &fakeSummarizer{results: map[string]result{
		"D1": {summary: "S1"},
		"D2": {err: errors.New("policy")},
		"D3": {summary: "S3"},
	}}
	m := metrics.New()

	New(store, summarizer, WithMetrics(m)).GetEnrichedEvents(t.Context())

	families, err := m.Registry().Gather()
	assert.Equal(t, nil, err)

	counts := map[string]float64{}
	var runs float64
	for _, f := range families {
		switch f.GetName() {
		case "cluedin_enrichments_total":
			for _, metric := range f.GetMetric() {
				counts[metric.GetLabel()[0].GetValue()] = metric.GetCounter().GetValue()
			}
		case "cluedin_pipeline_runs_total":
			runs = f.GetMetric()[0].GetCounter().GetValue()
		}
	}

	assert.Equal(t, float64(2), counts[metrics.OutcomeSuccess])
	assert.Equal(t, float64(1), counts[metrics.OutcomeFallback])
	assert.Equal(t, float64(1), runs)
}

func TestOutcome(t *testing.T) {
	ok := Outcome{Summary: "S"}
	failed := Outcome{Err: errors.New("boom")}

	assert.Equal(t, true, ok.Succeeded())
	assert.Equal(t, "S", ok.Text())
	assert.Equal(t, false, failed.Succeeded())
	assert.Equal(t, model.FallbackSummary, failed.Text())
}
