package tracing

import (
	"context"
	"time"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var (
	KeyProvider = tag.MustNewKey("provider")
	KeyOutcome  = tag.MustNewKey("outcome")
	KeyTable    = tag.MustNewKey("table")
	KeySource   = tag.MustNewKey("source")

	ChatCompletionLatency = stats.Float64("portfolio/chat/completion_latency", "Latency of text generation calls", stats.UnitMilliseconds)
	ChangeEventsReceived  = stats.Int64("portfolio/realtime/change_events", "Change events received", stats.UnitDimensionless)
)

// PortfolioViews are registered together with the metrics exporters
var PortfolioViews = []*view.View{
	{
		Name:        "portfolio/chat/completion_latency",
		Measure:     ChatCompletionLatency,
		Description: "Distribution of text generation latency",
		TagKeys:     []tag.Key{KeyProvider, KeyOutcome},
		Aggregation: view.Distribution(50, 100, 250, 500, 1000, 2000, 5000, 10000, 30000),
	},
	{
		Name:        "portfolio/chat/completion_count",
		Measure:     ChatCompletionLatency,
		Description: "Number of text generation calls",
		TagKeys:     []tag.Key{KeyProvider, KeyOutcome},
		Aggregation: view.Count(),
	},
	{
		Name:        "portfolio/realtime/change_events",
		Measure:     ChangeEventsReceived,
		Description: "Change events received per table and source",
		TagKeys:     []tag.Key{KeyTable, KeySource},
		Aggregation: view.Sum(),
	},
}

// RecordChatCompletion records one text generation call
func RecordChatCompletion(ctx context.Context, provider string, err error, elapsed time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	_ = stats.RecordWithTags(ctx,
		[]tag.Mutator{tag.Upsert(KeyProvider, provider), tag.Upsert(KeyOutcome, outcome)},
		ChatCompletionLatency.M(float64(elapsed)/float64(time.Millisecond)),
	)
}

// RecordChangeEvent counts a change event by table and source (listener or webhook)
func RecordChangeEvent(ctx context.Context, table, source string) {
	_ = stats.RecordWithTags(ctx,
		[]tag.Mutator{tag.Upsert(KeyTable, table), tag.Upsert(KeySource, source)},
		ChangeEventsReceived.M(1),
	)
}
