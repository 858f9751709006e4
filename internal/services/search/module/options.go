package module

import (
	"time"

	"qayd/internal/platform/config"
)

// Options controls the search orchestrator
type Options struct {
	PrefixTimeout  time.Duration
	PhaseTimeout   time.Duration
	BaseTimeout    time.Duration
	PerRune        time.Duration
	ArabicBonus    time.Duration
	MaxTimeout     time.Duration
	CacheSize      int
	CacheTTL       time.Duration
	MaxAttempts    int
	RetryBase      time.Duration
	RetryMax       time.Duration
	HealthInterval time.Duration
	MinFuzzyLen    int
	DefaultLimit   int
	HardLimit      int
}

// FromConfig reads with SEARCH_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("SEARCH_")
	return Options{
		PrefixTimeout:  c.MayDuration("PREFIX_TIMEOUT", 400*time.Millisecond),
		PhaseTimeout:   c.MayDuration("PHASE_TIMEOUT", 1500*time.Millisecond),
		BaseTimeout:    c.MayDuration("BASE_TIMEOUT", 2*time.Second),
		PerRune:        c.MayDuration("PER_RUNE", 50*time.Millisecond),
		ArabicBonus:    c.MayDuration("ARABIC_BONUS", time.Second),
		MaxTimeout:     c.MayDuration("MAX_TIMEOUT", 8*time.Second),
		CacheSize:      c.MayInt("CACHE_SIZE", 512),
		CacheTTL:       c.MayDuration("CACHE_TTL", 2*time.Minute),
		MaxAttempts:    c.MayInt("MAX_ATTEMPTS", 3),
		RetryBase:      c.MayDuration("RETRY_BASE", 250*time.Millisecond),
		RetryMax:       c.MayDuration("RETRY_MAX", 5*time.Second),
		HealthInterval: c.MayDuration("HEALTH_INTERVAL", 15*time.Second),
		MinFuzzyLen:    c.MayInt("MIN_FUZZY_LEN", 3),
		DefaultLimit:   c.MayInt("DEFAULT_LIMIT", 25),
		HardLimit:      c.MayInt("HARD_LIMIT", 200),
	}
}
