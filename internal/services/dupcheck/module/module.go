// Package module wires the duplicate checker and exposes its ports
package module

import (
	"qayd/internal/modkit"
	"qayd/internal/modkit/httpkit"
	"qayd/internal/services/dupcheck/service"
	searchdom "qayd/internal/services/search/domain"
)

// Module defines the dupcheck worker module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the checker over an injected searcher port
func New(deps modkit.Deps, searcher searchdom.SearcherPort) *Module {
	svc := service.New(searcher)
	m := &Module{deps: deps}
	m.ports = Ports{Checker: svc}
	return m
}

// Ports returns the module ports (Checker)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "dupcheck-worker" }

// Prefix returns the module route prefix (none for worker-only service)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
