package ports

import (
	"context"
	"shipping-quote-service/internal/domain"
)

// Port: a boundary for recording issued quotes for downstream analytics
// (profit reporting, coverage dashboards).
//
// Recording is best-effort from the caller's perspective: quoting never
// depends on the log, and the engine itself never calls it.
type QuoteLog interface {
	// Persist every quote of a set alongside the package that produced it.
	RecordQuoteSet(ctx context.Context, pkg domain.Package, qs domain.QuoteSet) error
}

// NoopQuoteLog satisfies QuoteLog without persisting anything. Used when no
// database is configured.
type NoopQuoteLog struct{}

func (NoopQuoteLog) RecordQuoteSet(ctx context.Context, pkg domain.Package, qs domain.QuoteSet) error {
	return nil
}
