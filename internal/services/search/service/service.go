// Package service implements the cascading search orchestrator: an explicit
// phase state machine with per-phase timeouts, a bounded TTL result cache,
// connection-health tracking and retry with jittered backoff
package service

import (
	"context"
	stderrs "errors"
	"fmt"
	"math/rand"
	"slices"
	"sort"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"qayd/internal/core/arabic"
	"qayd/internal/core/script"
	"qayd/internal/core/similarity"
	perr "qayd/internal/platform/errors"
	"qayd/internal/platform/logger"
	recdom "qayd/internal/services/records/domain"
	"qayd/internal/services/search/domain"
)

// Pinger reports backing-store readiness for the health loop
type Pinger interface {
	Ping(ctx context.Context) error
}

// Config holds every tunable of the orchestrator. The timeout formula
// constants are defaults, not contracts; deployments override them via env
type Config struct {
	// Per-phase timeouts. Prefix is the cheapest phase and gets the
	// tightest budget
	PrefixTimeout time.Duration // <=0 -> 400ms
	PhaseTimeout  time.Duration // <=0 -> 1500ms

	// Overall budget: Base + PerRune*len(normalized) + ArabicBonus when the
	// input carries Arabic script, capped at Max
	BaseTimeout time.Duration // <=0 -> 2s
	PerRune     time.Duration // <=0 -> 50ms
	ArabicBonus time.Duration // <=0 -> 1s
	MaxTimeout  time.Duration // <=0 -> 8s

	// Result cache
	CacheSize int           // <=0 -> 512 entries
	CacheTTL  time.Duration // <=0 -> 2m

	// Retry loop over the whole cascade; transient failures only
	MaxAttempts int           // <=0 -> 3
	RetryBase   time.Duration // <=0 -> 250ms
	RetryMax    time.Duration // <=0 -> 5s

	// Health probe cadence
	HealthInterval time.Duration // <=0 -> 15s

	// MinFuzzyLen disables the fuzzy fallback below this many runes
	MinFuzzyLen int // <=0 -> 3

	DefaultLimit int // <=0 -> 25
	HardLimit    int // <=0 -> 200
}

func (c *Config) defaults() {
	if c.PrefixTimeout <= 0 {
		c.PrefixTimeout = 400 * time.Millisecond
	}
	if c.PhaseTimeout <= 0 {
		c.PhaseTimeout = 1500 * time.Millisecond
	}
	if c.BaseTimeout <= 0 {
		c.BaseTimeout = 2 * time.Second
	}
	if c.PerRune <= 0 {
		c.PerRune = 50 * time.Millisecond
	}
	if c.ArabicBonus <= 0 {
		c.ArabicBonus = time.Second
	}
	if c.MaxTimeout <= 0 {
		c.MaxTimeout = 8 * time.Second
	}
	if c.CacheSize <= 0 {
		c.CacheSize = 512
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = 2 * time.Minute
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.RetryBase <= 0 {
		c.RetryBase = 250 * time.Millisecond
	}
	if c.RetryMax <= 0 {
		c.RetryMax = 5 * time.Second
	}
	if c.HealthInterval <= 0 {
		c.HealthInterval = 15 * time.Second
	}
	if c.MinFuzzyLen <= 0 {
		c.MinFuzzyLen = 3
	}
	if c.DefaultLimit <= 0 {
		c.DefaultLimit = 25
	}
	if c.HardLimit <= 0 {
		c.HardLimit = 200
	}
}

// Service implements domain.SearcherPort. Construct one per process: it owns
// the result cache and the store-health flag that used to be process globals
type Service struct {
	Store  domain.StorePort
	Cfg    Config
	Norm   *arabic.Normalizer
	Sim    *similarity.Engine
	Pinger Pinger

	cache   *expirable.LRU[string, []domain.Result]
	healthy atomic.Bool
	stop    chan struct{}
}

// New constructs the orchestrator and starts its health loop when a Pinger
// is supplied. Call Close on shutdown
func New(store domain.StorePort, pinger Pinger, cfg Config) *Service {
	if store == nil {
		panic("search.Service requires a non nil StorePort")
	}
	cfg.defaults()
	s := &Service{
		Store:  store,
		Cfg:    cfg,
		Norm:   arabic.New(),
		Sim:    similarity.New(),
		Pinger: pinger,
		cache:  expirable.NewLRU[string, []domain.Result](cfg.CacheSize, nil, cfg.CacheTTL),
		stop:   make(chan struct{}),
	}
	s.healthy.Store(true)
	if pinger != nil {
		go s.healthLoop()
	}
	return s
}

// Close stops the health loop
func (s *Service) Close() {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
}

// Healthy reports the last known store health
func (s *Service) Healthy() bool { return s.healthy.Load() }

func (s *Service) healthLoop() {
	t := time.NewTicker(s.Cfg.HealthInterval)
	defer t.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-t.C:
			ctx, cancel := context.WithTimeout(context.Background(), s.Cfg.PhaseTimeout)
			err := s.Pinger.Ping(ctx)
			cancel()
			ok := err == nil
			if prev := s.healthy.Swap(ok); prev != ok {
				if ok {
					logger.Named("search").Info().Msg("store recovered")
				} else {
					logger.Named("search").Warn().Err(err).Msg("store unhealthy")
				}
			}
		}
	}
}

// Search implements domain.SearcherPort
// Cache first; on a miss the whole cascade runs inside a bounded retry loop
// that backs off with jitter and only retries transient failures
func (s *Service) Search(ctx context.Context, q domain.Query) ([]domain.Result, error) {
	text := strings.TrimSpace(q.Text)
	if text == "" {
		return nil, perr.InvalidArgf("search query text is required")
	}
	limit := q.Limit
	if limit <= 0 {
		limit = s.Cfg.DefaultLimit
	}
	if limit > s.Cfg.HardLimit {
		limit = s.Cfg.HardLimit
	}
	normText := s.Norm.Normalize(text)

	key := cacheKey(normText, q.Filters, limit)
	if hit, ok := s.cache.Get(key); ok {
		// callers own their slice, a shared one would let them corrupt later hits
		return slices.Clone(hit), nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.budget(normText, text))
	defer cancel()

	var last error
	for attempt := 0; attempt < s.Cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			// Backoff with jitter before the retry, and skip the attempt
			// outright when the store is known down
			d := min(s.Cfg.RetryBase<<(attempt-1), s.Cfg.RetryMax)
			j := d/2 + time.Duration(rand.Int63n(int64(d/2)+1))
			if err := sleepCtx(ctx, j); err != nil {
				return nil, last
			}
			if !s.healthy.Load() {
				logger.C(ctx).Debug().Int("attempt", attempt).Msg("search: store unhealthy, skipping attempt")
				continue
			}
		}

		res, err := s.cascade(ctx, text, normText, q.Filters, limit, true)
		if err == nil {
			if len(res) > 0 {
				s.cache.Add(key, slices.Clone(res))
			}
			return res, nil
		}
		last = err
		if !transient(err) {
			return nil, err
		}
		if ctx.Err() != nil {
			break
		}
		logger.C(ctx).Warn().Err(err).Int("attempt", attempt+1).Msg("search: transient failure, will retry")
	}
	return nil, last
}

// ExactMatches implements domain.SearcherPort
// Prefix-phase semantics narrowed to normalized-name identity. Never cached:
// duplicate checks must see the latest committed state
func (s *Service) ExactMatches(ctx context.Context, name string) ([]domain.Result, error) {
	normText := s.Norm.Normalize(name)
	if normText == "" {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.Cfg.PhaseTimeout)
	defer cancel()

	recs, err := s.Store.PrefixLookup(ctx, normText, domain.Filters{}, s.Cfg.HardLimit)
	if err != nil {
		return nil, err
	}
	var out []domain.Result
	for _, r := range recs {
		if r.NormalizedName != normText {
			continue
		}
		out = append(out, domain.Result{
			Record:     r,
			Rank:       1,
			Phase:      domain.PhasePrefix,
			MatchPhase: domain.PhasePrefix.String(),
		})
	}
	return out, nil
}

// cascade drives the phase state machine once. It returns partial results in
// preference to an error whenever any phase already produced data
func (s *Service) cascade(
	ctx context.Context,
	raw, normText string,
	f domain.Filters,
	limit int,
	fuzzyOK bool,
) ([]domain.Result, error) {
	var acc []domain.Result
	seen := make(map[string]struct{})
	var last error

	for phase := domain.PhasePrefix; phase != domain.PhaseDone; phase++ {
		if len(acc) > 0 {
			break // earlier phase satisfied the query
		}

		var recs []recdom.Record
		var err error
		switch phase {
		case domain.PhasePrefix:
			recs, err = s.prefixPhase(ctx, raw, normText, f, limit)
		case domain.PhaseTrigram:
			recs, err = s.phaseLookup(ctx, s.Cfg.PhaseTimeout, func(c context.Context) ([]recdom.Record, error) {
				return s.Store.TrigramLookup(c, normText, f, limit)
			})
		case domain.PhaseFullText:
			sc := script.Detect(raw)
			recs, err = s.phaseLookup(ctx, s.Cfg.PhaseTimeout, func(c context.Context) ([]recdom.Record, error) {
				return s.Store.FullTextLookup(c, normText, sc, f, limit)
			})
		case domain.PhaseFuzzy:
			if !fuzzyOK || utf8.RuneCountInString(normText) < s.Cfg.MinFuzzyLen {
				continue // fuzzy matching is too noisy below the floor
			}
			recs, err = s.phaseLookup(ctx, s.Cfg.PhaseTimeout, func(c context.Context) ([]recdom.Record, error) {
				return s.Store.FuzzyLookup(c, normText, f, limit)
			})
		}

		if err != nil {
			if partial, stop := s.onPhaseErr(ctx, acc, phase, err); stop {
				return partial, nil
			}
			last = err
			continue
		}
		acc = s.merge(acc, recs, phase, seen, normText)
	}

	if len(acc) == 0 && last != nil {
		return nil, last
	}
	sort.SliceStable(acc, func(i, j int) bool {
		if acc[i].Phase != acc[j].Phase {
			return acc[i].Phase < acc[j].Phase
		}
		return acc[i].Rank > acc[j].Rank
	})
	if len(acc) > limit {
		acc = acc[:limit]
	}
	return acc, nil
}

// onPhaseErr is the central degraded-phase policy: with results already
// accumulated the partial set is returned rather than failed; with nothing
// accumulated the cascade logs and moves to the next phase
func (s *Service) onPhaseErr(ctx context.Context, acc []domain.Result, phase domain.Phase, err error) ([]domain.Result, bool) {
	if len(acc) > 0 {
		logger.C(ctx).Warn().Err(err).Stringer("phase", phase).
			Int("partial", len(acc)).Msg("search: phase degraded, returning partial results")
		return acc, true
	}
	logger.C(ctx).Debug().Err(err).Stringer("phase", phase).Msg("search: phase failed, falling through")
	return nil, false
}

// prefixPhase tries the raw input first and retries with the normalized form
// when that differs and the raw lookup found nothing
func (s *Service) prefixPhase(ctx context.Context, raw, normText string, f domain.Filters, limit int) ([]recdom.Record, error) {
	recs, err := s.phaseLookup(ctx, s.Cfg.PrefixTimeout, func(c context.Context) ([]recdom.Record, error) {
		return s.Store.PrefixLookup(c, raw, f, limit)
	})
	if err != nil {
		return nil, err
	}
	if len(recs) > 0 || normText == raw {
		return recs, nil
	}
	return s.phaseLookup(ctx, s.Cfg.PrefixTimeout, func(c context.Context) ([]recdom.Record, error) {
		return s.Store.PrefixLookup(c, normText, f, limit)
	})
}

// phaseLookup wraps one store call in its phase timeout so cancellation
// propagates into the in-flight query
func (s *Service) phaseLookup(
	ctx context.Context,
	timeout time.Duration,
	fn func(context.Context) ([]recdom.Record, error),
) ([]recdom.Record, error) {
	c, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fn(c)
}

// merge appends phase output, deduplicating by record identity. The earliest
// phase to find a record keeps it
func (s *Service) merge(
	acc []domain.Result,
	recs []recdom.Record,
	phase domain.Phase,
	seen map[string]struct{},
	normText string,
) []domain.Result {
	for _, r := range recs {
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		acc = append(acc, domain.Result{
			Record:     r,
			Rank:       s.Sim.Score(normText, r.NormalizedName),
			Phase:      phase,
			MatchPhase: phase.String(),
		})
	}
	return acc
}

// budget derives the overall search deadline from input length and script.
// Longer input and Arabic script get more room, capped at the configured max
func (s *Service) budget(normText, raw string) time.Duration {
	d := s.Cfg.BaseTimeout + time.Duration(utf8.RuneCountInString(normText))*s.Cfg.PerRune
	if script.HasArabic(raw) {
		d += s.Cfg.ArabicBonus
	}
	return min(d, s.Cfg.MaxTimeout)
}

// cacheKey fingerprints the full normalized parameter set
func cacheKey(normText string, f domain.Filters, limit int) string {
	var age string
	if f.AgeMin != nil {
		age = fmt.Sprintf("%d", *f.AgeMin)
	}
	age += "-"
	if f.AgeMax != nil {
		age += fmt.Sprintf("%d", *f.AgeMax)
	}
	return strings.Join([]string{
		normText,
		string(f.Status), string(f.Gender),
		age, f.Location, f.DateFrom, f.DateTo,
		fmt.Sprintf("%d", limit),
	}, "|")
}

// transient reports whether the cascade failure is worth another attempt:
// timeouts, cancellation of a phase deadline, and unavailable-store codes.
// Malformed-query style failures propagate immediately
func transient(err error) bool {
	if err == nil {
		return false
	}
	if perr.IsCode(err, perr.ErrorCodeUnavailable) {
		return true
	}
	if perr.Retryable(err) {
		return true
	}
	return stderrs.Is(err, context.DeadlineExceeded)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
