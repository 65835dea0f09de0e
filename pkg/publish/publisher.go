// Package publish pushes marketplace-only listings into the storefront
// one at a time, recording a per-item outcome instead of failing the run.
package publish

import (
	"context"

	"github.com/sellerstack/crosslist/pkg/catalog"
	"github.com/sellerstack/crosslist/pkg/logging"
)

// Creator is the write side of a storefront. The storefront client
// satisfies it.
type Creator interface {
	CreateItem(ctx context.Context, item catalog.Item) error
}

// Outcome records the result of one publish attempt.
type Outcome struct {
	Item        catalog.Item `json:"item"`
	Succeeded   bool         `json:"succeeded"`
	ErrorDetail string       `json:"error_detail,omitempty"`
}

// Publisher publishes canonical items through a Creator.
type Publisher struct {
	creator Creator
	dryRun  bool
}

// New returns a Publisher writing through creator.
func New(creator Creator, opts ...Option) *Publisher {
	p := &Publisher{creator: creator}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithDryRun skips the storefront write and reports every item as
// succeeded without side effects.
func WithDryRun(dryRun bool) Option {
	return func(p *Publisher) { p.dryRun = dryRun }
}

// Publish attempts to create one item in the storefront. Failures are
// folded into the Outcome; Publish itself never returns an error, so a
// bad item cannot abort a batch.
func (p *Publisher) Publish(ctx context.Context, item catalog.Item) Outcome {
	outcome := Outcome{Item: item}

	if p.dryRun {
		outcome.Succeeded = true
		logging.Ctx(ctx).Info().
			Str("name", item.Name).
			Msg("dry run, skipping storefront create")
		return outcome
	}

	if err := p.creator.CreateItem(ctx, item); err != nil {
		outcome.ErrorDetail = err.Error()
		logging.Ctx(ctx).Warn().
			Str("name", item.Name).
			Str("identity", item.Identity).
			Err(err).
			Msg("publish failed")
		return outcome
	}

	outcome.Succeeded = true
	logging.Ctx(ctx).Info().
		Str("name", item.Name).
		Msg("published to storefront")
	return outcome
}

// PublishAll publishes items sequentially, in order, continuing past
// failures. It stops early only when ctx is canceled; items never
// attempted are not counted.
func (p *Publisher) PublishAll(ctx context.Context, items []catalog.Item) Report {
	report := NewReport()
	for _, item := range items {
		if ctx.Err() != nil {
			logging.Ctx(ctx).Warn().
				Int("remaining", len(items)-report.Attempted).
				Msg("publish batch interrupted")
			break
		}
		report.Record(p.Publish(ctx, item))
	}
	return report
}
