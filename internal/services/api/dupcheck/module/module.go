// Package module wires duplicate checks into the API using modkit
package module

import (
	"net/http"

	modkit "qayd/internal/modkit"
	"qayd/internal/modkit/httpkit"
	str "qayd/internal/platform/strings"
	dhttp "qayd/internal/services/api/dupcheck/http"
	dsvc "qayd/internal/services/api/dupcheck/service"
	dupdom "qayd/internal/services/dupcheck/domain"
)

// Module implements the dupcheck API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc dsvc.Service
}

// Ports declares the required injected worker port(s) for this API module
type Ports struct {
	Checker dupdom.CheckerPort
}

// New constructs the dupcheck API module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("duplicates"),
		modkit.WithPrefix("/duplicates"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Checker == nil {
		panic("duplicates API module requires Checker port (from services/dupcheck)")
	}

	svc := dsvc.New(injected.Checker)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptCheckerPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		dhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
