// Package service provides the records service implementation
package service

import (
	"context"

	"github.com/google/uuid"

	"qayd/internal/core/arabic"
	"qayd/internal/modkit/repokit"
	perr "qayd/internal/platform/errors"
	"qayd/internal/services/records/domain"
	"qayd/internal/services/records/repo"
)

// Service implements domain.WriterPort and domain.ReaderPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Norm   *arabic.Normalizer
}

// New constructs a records service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage]) *Service {
	if db == nil {
		panic("records.Service requires a non nil TxRunner")
	}
	return &Service{DB: db, Binder: b, Norm: arabic.New()}
}

// Insert implements domain.WriterPort
// Normalized shadows are recomputed here on every write so they can never go
// stale relative to the raw fields
func (s *Service) Insert(ctx context.Context, rec domain.Record) (domain.Record, error) {
	if rec.FullName == "" {
		return domain.Record{}, perr.InvalidArgf("record full name is required")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.NormalizedName = s.Norm.Normalize(rec.FullName)
	rec.NormalizedLocation = s.Norm.Normalize(rec.LastSeenLocation)

	var out domain.Record
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).Insert(ctx, rec)
		return err
	})
	if err != nil {
		return domain.Record{}, err
	}
	return out, nil
}

// AppendRevision implements domain.WriterPort
func (s *Service) AppendRevision(ctx context.Context, recordID string, rev domain.Revision) error {
	if recordID == "" || rev.Field == "" {
		return perr.InvalidArgf("revision requires record id and field")
	}
	return s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Binder.Bind(q).AppendRevision(ctx, recordID, rev)
	})
}

// FindExactByNameAndDate implements domain.ReaderPort
// The name argument may be raw input; it is normalized here before the
// equality lookup
func (s *Service) FindExactByNameAndDate(ctx context.Context, name, date string) ([]domain.Record, error) {
	var out []domain.Record
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).FindExactByNameAndDate(ctx, s.Norm.Normalize(name), date)
		return err
	})
	return out, err
}

// GetByID implements domain.ReaderPort
func (s *Service) GetByID(ctx context.Context, id string) (domain.Record, error) {
	var out domain.Record
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).GetByID(ctx, id)
		return err
	})
	return out, err
}
