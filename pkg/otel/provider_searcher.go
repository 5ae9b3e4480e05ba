package otel

import (
	"context"
	"time"

	"github.com/adrianliechti/mysearch/pkg/searcher"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

type Searcher interface {
	Observable
	searcher.Provider
}

type observableSearcher struct {
	provider string

	searcher searcher.Provider

	durationMetric metric.Float64Histogram
	errorMetric    metric.Int64Counter
}

func NewSearcher(provider string, p searcher.Provider) Searcher {
	meter := otel.Meter(instrumentationName)

	durationMetric, _ := meter.Float64Histogram("search.client.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of upstream search requests."),
	)

	errorMetric, _ := meter.Int64Counter("search.client.errors",
		metric.WithDescription("Failed upstream search requests by kind."),
	)

	return &observableSearcher{
		searcher: p,

		provider: provider,

		durationMetric: durationMetric,
		errorMetric:    errorMetric,
	}
}

func (p *observableSearcher) otelSetup() {
}

func (p *observableSearcher) Search(ctx context.Context, query string) (*searcher.Result, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "search "+p.provider)
	defer span.End()

	providerAttr := attribute.String("search.provider", p.provider)

	span.SetAttributes(providerAttr, attribute.String("search.query", query))

	timestamp := time.Now()

	result, err := p.searcher.Search(ctx, query)

	p.durationMetric.Record(ctx, time.Since(timestamp).Seconds(), metric.WithAttributes(providerAttr))

	if err != nil {
		kind := searcher.Kind(err)

		span.RecordError(err)
		span.SetStatus(codes.Error, kind)

		p.errorMetric.Add(ctx, 1, metric.WithAttributes(providerAttr, attribute.String("error.type", kind)))

		return nil, err
	}

	span.SetAttributes(
		attribute.Int("search.total_count", result.TotalCount),
		attribute.Int("search.items", len(result.Items)),
	)

	return result, nil
}
