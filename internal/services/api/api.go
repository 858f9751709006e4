// Package api provides the HTTP API for the application
package api

import (
	"qayd/internal/platform/config"
	"qayd/internal/platform/logger"
	phttp "qayd/internal/platform/net/http"
	"qayd/internal/platform/net/middleware"
	"qayd/internal/platform/store"

	"qayd/internal/modkit"
	"qayd/internal/modkit/httpkit"
	"qayd/internal/modkit/module"
	"qayd/internal/modkit/swaggerkit"

	apidup "qayd/internal/services/api/dupcheck/module"
	apiing "qayd/internal/services/api/ingest/module"
	metamod "qayd/internal/services/api/meta/module"
	apisearch "qayd/internal/services/api/search/module"

	recrepo "qayd/internal/services/records/repo"
	recsvc "qayd/internal/services/records/service"

	// Worker modules own the Searcher, Checker, and Runner ports
	dupmod "qayd/internal/services/dupcheck/module"
	ingmod "qayd/internal/services/ingest/module"
	searchmod "qayd/internal/services/search/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// Worker modules first so their ports can feed the API modules
	searchWorker := searchmod.New(deps, searchmod.Options{})
	searcher := searchWorker.Ports().(searchmod.Ports).Searcher

	dupWorker := dupmod.New(deps, searcher)
	checker := dupWorker.Ports().(dupmod.Ports).Checker

	records := recsvc.New(deps.PG, recrepo.NewPG())
	ingWorker, err := ingmod.New(deps, records, ingmod.Options{})
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("ingest worker init")
	}
	runner := ingWorker.Ports().(ingmod.Ports).Runner

	// Ingestion writes sensitive records, so its surface mounts behind bearer
	// auth when org tokens are configured ("org:token" CSV). Without tokens the
	// routes stay open for local development
	var auth middleware.AuthPort
	if toks := opt.Config.MayCSV("AUTH_TOKENS", nil); len(toks) > 0 {
		auth = httpkit.NewPortFunc(httpkit.StaticTokens(toks))
	}

	mods := []module.Module{
		metamod.New(deps),
		searchWorker,
		dupWorker,
		ingWorker,
		apisearch.New(deps, modkit.WithPorts(apisearch.Ports{Searcher: searcher})),
		apidup.New(deps, modkit.WithPorts(apidup.Ports{Checker: checker})),
		apiing.New(deps, modkit.WithPorts(apiing.Ports{Runner: runner, Auth: auth})),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
