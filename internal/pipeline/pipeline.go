package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhscancode/cluedin/internal/metrics"
	"github.com/abhscancode/cluedin/internal/model"
	"github.com/abhscancode/cluedin/pkg/llm"
	"golang.org/x/sync/errgroup"
)

type EventStore interface {
	List() []model.Event
}

type FailureRecorder interface {
	RecordFailure(ctx context.Context, failure model.EnrichmentFailure) error
}

// Outcome is the result of enriching one event. Err is nil when the summary
// was generated; otherwise the event falls back to model.FallbackSummary.
type Outcome struct {
	Summary string
	Err     error
}

func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// Text collapses the outcome into the value stored on Event.Summary.
func (o Outcome) Text() string {
	if o.Err != nil {
		return model.FallbackSummary
	}
	return o.Summary
}

type Pipeline struct {
	store       EventStore
	summarizer  llm.Summarizer
	recorder    FailureRecorder
	metrics     *metrics.Metrics
	concurrency int
	now         func() time.Time
}

type Option func(*Pipeline)

func WithFailureRecorder(recorder FailureRecorder) Option {
	return func(p *Pipeline) {
		p.recorder = recorder
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Pipeline) {
		p.metrics = m
	}
}

// WithConcurrency caps the number of in-flight summary calls. Zero or a
// negative value means one call per event at once.
func WithConcurrency(n int) Option {
	return func(p *Pipeline) {
		p.concurrency = n
	}
}

func New(store EventStore, summarizer llm.Summarizer, opts ...Option) *Pipeline {
	p := &Pipeline{
		store:      store,
		summarizer: summarizer,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// GetEnrichedEvents reads the whole store and returns it with summaries
// attached. It never fails: a failed summary becomes model.FallbackSummary.
func (p *Pipeline) GetEnrichedEvents(ctx context.Context) []model.Event {
	if p.metrics != nil {
		p.metrics.ObservePipelineRun()
	}
	return p.Enrich(ctx, p.store.List())
}

func (p *Pipeline) Enrich(ctx context.Context, events []model.Event) []model.Event {
	outcomes := p.Outcomes(ctx, events)

	enriched := make([]model.Event, len(events))
	for i, e := range events {
		e.Summary = outcomes[i].Text()
		enriched[i] = e

		if !outcomes[i].Succeeded() {
			p.recordFailure(ctx, e, outcomes[i].Err)
		}
	}

	return enriched
}

// Outcomes runs one summary call per event and returns the outcomes indexed
// like the input, whatever order the calls complete in.
func (p *Pipeline) Outcomes(ctx context.Context, events []model.Event) []Outcome {
	outcomes := make([]Outcome, len(events))
	if len(events) == 0 {
		return outcomes
	}

	var g errgroup.Group
	if p.concurrency > 0 {
		g.SetLimit(p.concurrency)
	}

	for i, e := range events {
		g.Go(func() error {
			outcomes[i] = p.summarize(ctx, e)
			return nil
		})
	}

	g.Wait()

	return outcomes
}

func (p *Pipeline) summarize(ctx context.Context, e model.Event) (out Outcome) {
	start := p.now()

	defer func() {
		if r := recover(); r != nil {
			out = Outcome{Err: fmt.Errorf("summarizer panic: %v", r)}
		}

		if p.metrics != nil {
			outcome := metrics.OutcomeSuccess
			if out.Err != nil {
				outcome = metrics.OutcomeFallback
			}
			p.metrics.ObserveEnrichment(outcome, p.now().Sub(start))
		}
	}()

	summary, err := p.summarizer.Summarize(ctx, e.Description)
	if err != nil {
		return Outcome{Err: err}
	}

	return Outcome{Summary: summary}
}

func (p *Pipeline) recordFailure(ctx context.Context, e model.Event, reason error) {
	slog.Error("failed to generate summary for event", "event_id", e.ID, "title", e.Title, "error", reason)

	if p.recorder == nil {
		return
	}

	failure := model.EnrichmentFailure{
		EventID:  e.ID,
		Title:    e.Title,
		Reason:   reason.Error(),
		FailedAt: p.now().UTC(),
	}

	if err := p.recorder.RecordFailure(context.WithoutCancel(ctx), failure); err != nil {
		slog.Warn("error recording enrichment failure", "event_id", e.ID, "error", err)
	}
}
