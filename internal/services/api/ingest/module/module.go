// Package module wires batch ingestion into the API using modkit
package module

import (
	"net/http"

	modkit "qayd/internal/modkit"
	"qayd/internal/modkit/httpkit"
	"qayd/internal/platform/net/middleware"
	str "qayd/internal/platform/strings"
	ihttp "qayd/internal/services/api/ingest/http"
	isvc "qayd/internal/services/api/ingest/service"
	ingdom "qayd/internal/services/ingest/domain"
)

// Module implements the ingest API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	auth middleware.AuthPort
	svc  isvc.Service
}

// Ports declares the injected ports for this API module. Auth is optional:
// when set the whole ingest surface mounts behind bearer auth
type Ports struct {
	Runner ingdom.RunnerPort
	Auth   middleware.AuthPort
}

// New constructs the ingest API module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("ingest"),
		modkit.WithPrefix("/ingest"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Runner == nil {
		panic("ingest API module requires Runner port (from services/ingest)")
	}

	svc := isvc.New(injected.Runner)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		auth:      injected.Auth,
		svc:       svc,
	}
	m.ports = adaptRunnerPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		ihttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router.
// With an Auth port every ingest route sits behind bearer auth
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register == nil {
			return
		}
		if m.auth != nil {
			httpkit.Protected(rr, m.auth, func(pr httpkit.Router) { m.register(pr) })
			return
		}
		m.register(rr)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
