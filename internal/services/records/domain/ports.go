package domain

import "context"

// WriterPort defines the write interface for records
type WriterPort interface {
	// Insert persists a new record and returns it with identity and
	// timestamps filled in. A unique-constraint hit surfaces as a
	// duplicate-key coded error
	Insert(ctx context.Context, rec Record) (Record, error)

	// AppendRevision snapshots a prior field value onto the record history
	AppendRevision(ctx context.Context, recordID string, rev Revision) error
}

// ReaderPort defines the read interface for records
type ReaderPort interface {
	// FindExactByNameAndDate matches on normalized-name identity plus the
	// canonical detention date. This is the cheap equality check batch
	// ingestion uses, not the fuzzy cascade
	FindExactByNameAndDate(ctx context.Context, normalizedName, date string) ([]Record, error)

	// GetByID loads one record with its revision history
	GetByID(ctx context.Context, id string) (Record, error)
}
