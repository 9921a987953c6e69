package config

import "time"

type Pricing struct {
	Enabled bool   `env:"PRICING_ENABLED" envDefault:"true"`
	BaseURL string `env:"PRICING_BASE_URL" envDefault:"https://universalis.app"`

	// Default query context; the render path may override per request.
	World  string `env:"PRICING_WORLD" envDefault:"Cactuar"`
	Region string `env:"PRICING_REGION" envDefault:"Aether"`

	// PreferRegionScope queries the broad scope directly. RegionFallback
	// retries the broad scope once when the narrow scope misses; the inline
	// retry can double worst-case latency on slow links, hence the switch.
	PreferRegionScope bool `env:"PRICING_PREFER_REGION" envDefault:"false"`
	RegionFallback    bool `env:"PRICING_REGION_FALLBACK" envDefault:"true"`

	CacheTTL           time.Duration `env:"PRICING_CACHE_TTL" envDefault:"5m"`
	FailureBackoff     time.Duration `env:"PRICING_FAILURE_BACKOFF" envDefault:"1m"`
	RateLimitBackoff   time.Duration `env:"PRICING_RATE_LIMIT_BACKOFF" envDefault:"5m"`
	StuckTimeout       time.Duration `env:"PRICING_STUCK_TIMEOUT" envDefault:"30s"`
	MaxInFlight        int           `env:"PRICING_MAX_IN_FLIGHT" envDefault:"5"`
	MinRequestInterval time.Duration `env:"PRICING_MIN_REQUEST_INTERVAL" envDefault:"500ms"`
	RequestTimeout     time.Duration `env:"PRICING_REQUEST_TIMEOUT" envDefault:"10s"`
}
