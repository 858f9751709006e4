package domain

import (
	"context"

	"qayd/internal/core/script"
	recdom "qayd/internal/services/records/domain"
)

// StorePort is the queryable backing store the orchestrator cascades over.
// Every call honors ctx cancellation; failures carry the platform error
// codes so the orchestrator can tell transient from permanent
type StorePort interface {
	// PrefixLookup is an exact-prefix match on the normalized name shadow
	// (or the raw name when text is unnormalized input)
	PrefixLookup(ctx context.Context, text string, f Filters, limit int) ([]recdom.Record, error)

	// TrigramLookup is a trigram-similarity match against normalized input
	TrigramLookup(ctx context.Context, text string, f Filters, limit int) ([]recdom.Record, error)

	// FullTextLookup queries the full-text configuration matching the
	// detected script; only one configuration is queried per input
	FullTextLookup(ctx context.Context, text string, sc script.Script, f Filters, limit int) ([]recdom.Record, error)

	// FuzzyLookup is the trigram-operator fallback across name and location
	FuzzyLookup(ctx context.Context, text string, f Filters, limit int) ([]recdom.Record, error)
}

// SearcherPort is the search surface other services consume
type SearcherPort interface {
	// Search runs the full cascade with caching and retry
	Search(ctx context.Context, q Query) ([]Result, error)

	// ExactMatches returns only records whose normalized name is identical
	// to the normalized input (prefix-phase semantics, equality filtered)
	ExactMatches(ctx context.Context, name string) ([]Result, error)
}
