// Package module wires the ingestion pipeline and exposes its ports
package module

import (
	"time"

	"qayd/internal/modkit"
	"qayd/internal/modkit/httpkit"
	"qayd/internal/platform/config"
	"qayd/internal/services/ingest/service"
	recsvc "qayd/internal/services/records/service"
)

// Options controls the ingestion pipeline
type Options struct {
	Workers      int
	MaxRows      int
	StrictEnums  bool
	BatchTimeout time.Duration
}

// FromConfig reads with INGEST_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("INGEST_")
	return Options{
		Workers:      c.MayInt("WORKERS", 4),
		MaxRows:      c.MayInt("MAX_ROWS", 10_000),
		StrictEnums:  c.MayBool("STRICT_ENUMS", false),
		BatchTimeout: c.MayDuration("BATCH_TIMEOUT", 10*time.Minute),
	}
}

// Module defines the ingest worker module
type Module struct {
	deps  modkit.Deps
	svc   *service.Service
	ports Ports
}

// New constructs the ingest module over the records service
func New(deps modkit.Deps, records *recsvc.Service, overrides Options) (*Module, error) {
	opts := FromConfig(deps.Cfg)
	if overrides.Workers != 0 {
		opts.Workers = overrides.Workers
	}
	if overrides.MaxRows != 0 {
		opts.MaxRows = overrides.MaxRows
	}
	if overrides.BatchTimeout != 0 {
		opts.BatchTimeout = overrides.BatchTimeout
	}
	if overrides.StrictEnums {
		opts.StrictEnums = true
	}

	svc, err := service.New(records, service.Config{
		Workers:      opts.Workers,
		MaxRows:      opts.MaxRows,
		StrictEnums:  opts.StrictEnums,
		BatchTimeout: opts.BatchTimeout,
	})
	if err != nil {
		return nil, err
	}

	m := &Module{deps: deps, svc: svc}
	m.ports = Ports{Runner: svc}
	return m, nil
}

// Close drains the session pool
func (m *Module) Close() { m.svc.Close() }

// Ports returns the module ports (Runner)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "ingest-worker" }

// Prefix returns the module route prefix (none for worker-only service)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
