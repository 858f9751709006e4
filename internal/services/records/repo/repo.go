// Package repo provides the Postgres repository for detainee records
package repo

import (
	"context"

	"qayd/internal/modkit/repokit"
	perr "qayd/internal/platform/errors"
	"qayd/internal/services/records/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the records repository
type Storage interface {
	Insert(ctx context.Context, rec domain.Record) (domain.Record, error)
	AppendRevision(ctx context.Context, recordID string, rev domain.Revision) error
	FindExactByNameAndDate(ctx context.Context, normalizedName, date string) ([]domain.Record, error)
	GetByID(ctx context.Context, id string) (domain.Record, error)
}

type pg struct{ q repokit.Queryer }

// Columns is the shared select list for detainee_records, in Scan order.
// The search repo reuses it so both sides stay in sync
const Columns = `
	r.id::text,
	r.full_name,
	COALESCE(r.original_name, ''),
	r.normalized_name,
	r.normalized_location,
	r.detention_date,
	r.last_seen_location,
	COALESCE(r.facility, ''),
	COALESCE(r.description, ''),
	r.age,
	r.gender,
	r.status,
	r.contact_info,
	COALESCE(r.organization, ''),
	COALESCE(r.notes, ''),
	r.created_at,
	r.updated_at`

// Scan reads one detainee_records row in Columns order
func Scan(row repokit.Row) (domain.Record, error) {
	var r domain.Record
	err := row.Scan(
		&r.ID, &r.FullName, &r.OriginalName,
		&r.NormalizedName, &r.NormalizedLocation,
		&r.DetentionDate, &r.LastSeenLocation,
		&r.Facility, &r.Description,
		&r.Age, &r.Gender, &r.Status,
		&r.ContactInfo, &r.Organization, &r.Notes,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// CollectRows drains a result set of detainee_records rows
func CollectRows(rows repokit.Rows) ([]domain.Record, error) {
	defer rows.Close()
	var out []domain.Record
	for rows.Next() {
		r, err := Scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Insert implements Storage
func (s *pg) Insert(ctx context.Context, rec domain.Record) (domain.Record, error) {
	row := s.q.QueryRow(ctx, `
		INSERT INTO detainee_records (
			id, full_name, original_name, normalized_name, normalized_location,
			detention_date, last_seen_location, facility, description,
			age, gender, status, contact_info, organization, notes,
			created_at, updated_at
		) VALUES (
			$1::uuid, $2, NULLIF($3, ''), $4, $5,
			$6, $7, NULLIF($8, ''), NULLIF($9, ''),
			$10, $11, $12, $13, NULLIF($14, ''), NULLIF($15, ''),
			now(), now()
		)
		RETURNING
			id::text, full_name, COALESCE(original_name, ''),
			normalized_name, normalized_location,
			detention_date, last_seen_location,
			COALESCE(facility, ''), COALESCE(description, ''),
			age, gender, status,
			contact_info, COALESCE(organization, ''), COALESCE(notes, ''),
			created_at, updated_at`,
		rec.ID, rec.FullName, rec.OriginalName, rec.NormalizedName, rec.NormalizedLocation,
		rec.DetentionDate, rec.LastSeenLocation, rec.Facility, rec.Description,
		rec.Age, rec.Gender, rec.Status, rec.ContactInfo, rec.Organization, rec.Notes,
	)
	out, err := Scan(row)
	if err != nil {
		return domain.Record{}, perr.FromPostgresWithField(err, "insert detainee record")
	}
	return out, nil
}

// AppendRevision implements Storage
func (s *pg) AppendRevision(ctx context.Context, recordID string, rev domain.Revision) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO record_revisions (record_id, field, old_value, reason, created_at)
		VALUES ($1::uuid, $2, $3, $4, now())`,
		recordID, rev.Field, rev.OldValue, rev.Reason,
	)
	return perr.FromPostgres(err, "append record revision")
}

// FindExactByNameAndDate implements Storage
func (s *pg) FindExactByNameAndDate(ctx context.Context, normalizedName, date string) ([]domain.Record, error) {
	rows, err := s.q.Query(ctx, `
		SELECT `+Columns+`
		FROM detainee_records r
		WHERE r.normalized_name = $1 AND r.detention_date = $2
		ORDER BY r.created_at, r.id`,
		normalizedName, date,
	)
	if err != nil {
		return nil, perr.FromPostgres(err, "find exact by name and date")
	}
	return CollectRows(rows)
}

// GetByID implements Storage
func (s *pg) GetByID(ctx context.Context, id string) (domain.Record, error) {
	rec, err := Scan(s.q.QueryRow(ctx, `
		SELECT `+Columns+`
		FROM detainee_records r
		WHERE r.id = $1::uuid`,
		id,
	))
	if err != nil {
		return domain.Record{}, perr.FromPostgres(err, "get record by id")
	}

	rows, err := s.q.Query(ctx, `
		SELECT field, old_value, reason, created_at
		FROM record_revisions
		WHERE record_id = $1::uuid
		ORDER BY created_at, id`,
		id,
	)
	if err != nil {
		return domain.Record{}, perr.FromPostgres(err, "load record revisions")
	}
	defer rows.Close()
	for rows.Next() {
		var rv domain.Revision
		if err := rows.Scan(&rv.Field, &rv.OldValue, &rv.Reason, &rv.At); err != nil {
			return domain.Record{}, err
		}
		rec.History = append(rec.History, rv)
	}
	return rec, rows.Err()
}
