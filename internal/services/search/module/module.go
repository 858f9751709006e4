// Package module wires the search orchestrator and exposes its ports
package module

import (
	"context"

	"qayd/internal/modkit"
	"qayd/internal/modkit/httpkit"
	"qayd/internal/services/search/repo"
	"qayd/internal/services/search/service"
)

// Module defines the search worker module
type Module struct {
	deps  modkit.Deps
	svc   *service.Service
	ports Ports
}

// New constructs the search module over the shared Postgres runner
func New(deps modkit.Deps, overrides Options) *Module {
	opts := FromConfig(deps.Cfg)
	if overrides.CacheSize != 0 {
		opts.CacheSize = overrides.CacheSize
	}
	if overrides.CacheTTL != 0 {
		opts.CacheTTL = overrides.CacheTTL
	}
	if overrides.MaxAttempts != 0 {
		opts.MaxAttempts = overrides.MaxAttempts
	}
	if overrides.HardLimit != 0 {
		opts.HardLimit = overrides.HardLimit
	}

	st := repo.NewPG().Bind(deps.PG)

	// the pg adapter exposes Ping; a bare test runner may not
	var pinger service.Pinger
	if p, ok := any(deps.PG).(interface{ Ping(context.Context) error }); ok {
		pinger = p
	}

	svc := service.New(st, pinger, service.Config{
		PrefixTimeout:  opts.PrefixTimeout,
		PhaseTimeout:   opts.PhaseTimeout,
		BaseTimeout:    opts.BaseTimeout,
		PerRune:        opts.PerRune,
		ArabicBonus:    opts.ArabicBonus,
		MaxTimeout:     opts.MaxTimeout,
		CacheSize:      opts.CacheSize,
		CacheTTL:       opts.CacheTTL,
		MaxAttempts:    opts.MaxAttempts,
		RetryBase:      opts.RetryBase,
		RetryMax:       opts.RetryMax,
		HealthInterval: opts.HealthInterval,
		MinFuzzyLen:    opts.MinFuzzyLen,
		DefaultLimit:   opts.DefaultLimit,
		HardLimit:      opts.HardLimit,
	})

	m := &Module{deps: deps, svc: svc}
	m.ports = Ports{Searcher: svc}
	return m
}

// Close stops the orchestrator's health loop
func (m *Module) Close() { m.svc.Close() }

// Ports returns the module ports (Searcher)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "search-worker" }

// Prefix returns the module route prefix (none for worker-only service)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
