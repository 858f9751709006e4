// Package service implements the batch ingestion pipeline: map, dedup,
// insert, row by row, with observable progress per session
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"qayd/internal/core/canon"
	perr "qayd/internal/platform/errors"
	"qayd/internal/platform/logger"
	tim "qayd/internal/platform/time"
	"qayd/internal/services/ingest/domain"
	recdom "qayd/internal/services/records/domain"
)

// RecordStore is the slice of the records service one batch needs
type RecordStore interface {
	recdom.WriterPort
	recdom.ReaderPort
}

// Config tunes the pipeline
type Config struct {
	// Workers bounds concurrently running sessions, not rows. Rows within a
	// session always run one at a time, in input order
	Workers int

	// MaxRows rejects oversized submissions up front
	MaxRows int

	// StrictEnums makes unrecognized gender/status values field errors
	// instead of coercing to unknown
	StrictEnums bool

	// BatchTimeout bounds one session's total runtime
	BatchTimeout time.Duration
}

func (c *Config) defaults() {
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.MaxRows <= 0 {
		c.MaxRows = 10_000
	}
	if c.BatchTimeout <= 0 {
		c.BatchTimeout = 10 * time.Minute
	}
}

// session is one submitted batch. All mutation goes through the mutex so
// Progress snapshots are always internally consistent
type session struct {
	mu       sync.Mutex
	prog     domain.Progress
	outcomes []domain.RowOutcome
}

func (s *session) snapshot() domain.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prog
}

func (s *session) setStatus(st domain.BatchStatus, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prog.Status = st
	s.prog.Err = msg
	switch st {
	case domain.StatusProcessing:
		s.prog.StartedAt = tim.Ptr(time.Now().UTC())
	case domain.StatusCompleted, domain.StatusFailed:
		s.prog.FinishedAt = tim.Ptr(time.Now().UTC())
	}
}

func (s *session) record(o domain.RowOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcomes = append(s.outcomes, o)
	s.prog.Processed++
	switch o.Disposition {
	case domain.DispositionValid:
		s.prog.Valid++
	case domain.DispositionDuplicate:
		s.prog.Duplicate++
	default:
		s.prog.Invalid++
	}
}

func (s *session) summary() domain.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum := domain.Summary{
		Total:     s.prog.Total,
		Valid:     s.prog.Valid,
		Invalid:   s.prog.Invalid,
		Duplicate: s.prog.Duplicate,
	}
	for _, o := range s.outcomes {
		if o.Disposition != domain.DispositionValid {
			sum.Errors = append(sum.Errors, o)
		}
	}
	return sum
}

// Service implements domain.RunnerPort
type Service struct {
	Records RecordStore
	Mapper  *canon.Mapper
	Cfg     Config

	pool *ants.Pool

	mu       sync.RWMutex
	sessions map[string]*session
}

// New constructs the pipeline and its session pool. Call Close on shutdown
func New(records RecordStore, cfg Config) (*Service, error) {
	if records == nil {
		panic("ingest.Service requires a non nil RecordStore")
	}
	cfg.defaults()
	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "ingest: session pool")
	}
	return &Service{
		Records:  records,
		Mapper:   canon.NewMapper(canon.Options{StrictEnums: cfg.StrictEnums}),
		Cfg:      cfg,
		pool:     pool,
		sessions: make(map[string]*session),
	}, nil
}

// Close drains the session pool
func (s *Service) Close() { s.pool.Release() }

// Submit implements domain.RunnerPort
// The batch is validated, registered, and handed to the pool; the returned
// id is immediately queryable via Progress
func (s *Service) Submit(_ context.Context, rows []map[string]string, org string) (string, error) {
	if len(rows) == 0 {
		return "", perr.InvalidArgf("batch has no rows")
	}
	if len(rows) > s.Cfg.MaxRows {
		return "", perr.InvalidArgf("batch exceeds %d rows", s.Cfg.MaxRows)
	}

	id := uuid.NewString()
	sess := &session{prog: domain.Progress{Status: domain.StatusPending, Total: len(rows)}}
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	// Outlives the submitting request on purpose
	if err := s.pool.Submit(func() { s.run(id, sess, rows, org) }); err != nil {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return "", perr.Wrap(err, perr.ErrorCodeUnavailable, "ingest: submit batch")
	}
	return id, nil
}

// Progress implements domain.RunnerPort
func (s *Service) Progress(id string) (domain.Progress, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return domain.Progress{}, false
	}
	return sess.snapshot(), true
}

// Result implements domain.RunnerPort
// Only terminal sessions have a summary
func (s *Service) Result(id string) (domain.Summary, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return domain.Summary{}, false
	}
	if p := sess.snapshot(); p.Status != domain.StatusCompleted && p.Status != domain.StatusFailed {
		return domain.Summary{}, false
	}
	return sess.summary(), true
}

// run is the session body: rows strictly in input order, one goroutine.
// A panic fails the whole session rather than wedging it in processing
func (s *Service) run(id string, sess *session, rows []map[string]string, org string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.Cfg.BatchTimeout)
	defer cancel()

	log := logger.Named("ingest").With().Str("batch_id", id).Logger()
	defer func() {
		if r := recover(); r != nil {
			sess.setStatus(domain.StatusFailed, fmt.Sprintf("batch aborted: %v", r))
			log.Error().Any("panic", r).Msg("batch aborted")
		}
	}()

	sess.setStatus(domain.StatusProcessing, "")
	for i, row := range rows {
		if ctx.Err() != nil {
			sess.setStatus(domain.StatusFailed, "batch timed out")
			log.Warn().Int("row", i).Msg("batch timed out")
			return
		}
		sess.record(s.processRow(ctx, i, row, org))
	}
	sess.setStatus(domain.StatusCompleted, "")

	p := sess.snapshot()
	log.Info().
		Int("total", p.Total).
		Int("valid", p.Valid).
		Int("invalid", p.Invalid).
		Int("duplicate", p.Duplicate).
		Msg("batch completed")
}

// processRow maps one raw row and decides its disposition. A storage error
// marks the row and lets the batch continue
func (s *Service) processRow(ctx context.Context, idx int, row map[string]string, org string) domain.RowOutcome {
	out := domain.RowOutcome{Index: idx}

	rec, ferrs := s.Mapper.MapRow(row)
	out.Record = rec
	if len(ferrs) > 0 {
		out.Errors = ferrs
		out.Disposition = domain.DispositionInvalid
		return out
	}

	dupes, err := s.Records.FindExactByNameAndDate(ctx, rec.NormalizedName, rec.DetentionDate)
	if err != nil {
		out.Disposition = domain.DispositionInvalid
		out.Err = err.Error()
		return out
	}
	if len(dupes) > 0 {
		out.Disposition = domain.DispositionDuplicate
		return out
	}

	if org != "" {
		rec.Organization = org
	}
	if _, err := s.Records.Insert(ctx, recdom.Record{Record: rec}); err != nil {
		if perr.IsDuplicateKey(err) {
			// raced another writer to the same identity
			out.Disposition = domain.DispositionDuplicate
			return out
		}
		out.Disposition = domain.DispositionInvalid
		out.Err = err.Error()
		return out
	}
	out.Record = rec
	out.Disposition = domain.DispositionValid
	return out
}
