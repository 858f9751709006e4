// Package repo implements the queryable store the search cascade runs over.
// Prefix matching rides the normalized-name btree, trigram and fuzzy phases
// use pg_trgm, and full-text uses the script-matched tsvector configuration
package repo

import (
	"context"
	"fmt"
	"strings"

	"qayd/internal/core/script"
	"qayd/internal/modkit/repokit"
	perr "qayd/internal/platform/errors"
	recdom "qayd/internal/services/records/domain"
	recrepo "qayd/internal/services/records/repo"
	"qayd/internal/services/search/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage is the repository form of domain.StorePort
type Storage interface {
	PrefixLookup(ctx context.Context, text string, f domain.Filters, limit int) ([]recdom.Record, error)
	TrigramLookup(ctx context.Context, text string, f domain.Filters, limit int) ([]recdom.Record, error)
	FullTextLookup(ctx context.Context, text string, sc script.Script, f domain.Filters, limit int) ([]recdom.Record, error)
	FuzzyLookup(ctx context.Context, text string, f domain.Filters, limit int) ([]recdom.Record, error)
}

type pg struct{ q repokit.Queryer }

// trigramFloor is the pg_trgm similarity cutoff for the trigram phase
const trigramFloor = 0.3

// appendFilters writes the structured-filter conjunctions shared by every phase
func appendFilters(sb *strings.Builder, arg func(any) string, f domain.Filters) {
	if f.Status != "" {
		sb.WriteString("  AND r.status = " + arg(string(f.Status)) + "\n")
	}
	if f.Gender != "" {
		sb.WriteString("  AND r.gender = " + arg(string(f.Gender)) + "\n")
	}
	if f.AgeMin != nil {
		sb.WriteString("  AND r.age >= " + arg(*f.AgeMin) + "\n")
	}
	if f.AgeMax != nil {
		sb.WriteString("  AND r.age <= " + arg(*f.AgeMax) + "\n")
	}
	if f.Location != "" {
		loc := arg(f.Location)
		sb.WriteString("  AND (r.last_seen_location ILIKE '%' || " + loc +
			" || '%' OR r.normalized_location ILIKE '%' || " + loc + " || '%')\n")
	}
	if f.DateFrom != "" {
		sb.WriteString("  AND r.detention_date >= " + arg(f.DateFrom) + "\n")
	}
	if f.DateTo != "" {
		sb.WriteString("  AND r.detention_date <= " + arg(f.DateTo) + "\n")
	}
}

// PrefixLookup implements Storage
// text may be raw or normalized input; both name columns are tried
func (s *pg) PrefixLookup(ctx context.Context, text string, f domain.Filters, limit int) ([]recdom.Record, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	p := arg(text)
	sb.WriteString(`
		SELECT ` + recrepo.Columns + `
		FROM detainee_records r
		WHERE (r.normalized_name LIKE ` + p + ` || '%' OR r.full_name LIKE ` + p + ` || '%')
	`)
	appendFilters(&sb, arg, f)
	sb.WriteString("ORDER BY r.normalized_name, r.id\nLIMIT " + arg(limit))

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "prefix lookup")
	}
	return recrepo.CollectRows(rows)
}

// TrigramLookup implements Storage
func (s *pg) TrigramLookup(ctx context.Context, text string, f domain.Filters, limit int) ([]recdom.Record, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	p := arg(text)
	sb.WriteString(`
		SELECT ` + recrepo.Columns + `
		FROM detainee_records r
		WHERE similarity(r.normalized_name, ` + p + `) > ` + arg(trigramFloor) + `
	`)
	appendFilters(&sb, arg, f)
	sb.WriteString("ORDER BY similarity(r.normalized_name, " + p + ") DESC, r.id\nLIMIT " + arg(limit))

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "trigram lookup")
	}
	return recrepo.CollectRows(rows)
}

// FullTextLookup implements Storage
// Exactly one text-search configuration is queried per input, chosen by the
// detected script
func (s *pg) FullTextLookup(ctx context.Context, text string, sc script.Script, f domain.Filters, limit int) ([]recdom.Record, error) {
	cfg := "simple"
	if sc == script.Arabic {
		cfg = "arabic"
	}

	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	c := arg(cfg)
	p := arg(text)
	sb.WriteString(`
		SELECT ` + recrepo.Columns + `
		FROM detainee_records r
		WHERE to_tsvector(` + c + `::regconfig,
				r.full_name || ' ' || COALESCE(r.original_name, '') || ' ' || r.last_seen_location)
			@@ plainto_tsquery(` + c + `::regconfig, ` + p + `)
	`)
	appendFilters(&sb, arg, f)
	sb.WriteString(`ORDER BY ts_rank(
			to_tsvector(` + c + `::regconfig,
				r.full_name || ' ' || COALESCE(r.original_name, '') || ' ' || r.last_seen_location),
			plainto_tsquery(` + c + `::regconfig, ` + p + `)) DESC, r.id
		LIMIT ` + arg(limit))

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "fulltext lookup")
	}
	return recrepo.CollectRows(rows)
}

// FuzzyLookup implements Storage
// The trigram similarity operator runs across both name and location shadows
func (s *pg) FuzzyLookup(ctx context.Context, text string, f domain.Filters, limit int) ([]recdom.Record, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	p := arg(text)
	sb.WriteString(`
		SELECT ` + recrepo.Columns + `
		FROM detainee_records r
		WHERE (r.normalized_name % ` + p + ` OR r.normalized_location % ` + p + `)
	`)
	appendFilters(&sb, arg, f)
	sb.WriteString("ORDER BY GREATEST(similarity(r.normalized_name, " + p +
		"), similarity(r.normalized_location, " + p + ")) DESC, r.id\nLIMIT " + arg(limit))

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "fuzzy lookup")
	}
	return recrepo.CollectRows(rows)
}
