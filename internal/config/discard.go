package config

import "time"

type Discard struct {
	// SettleDelay gives the host time to process an action before the next
	// poll; GracePeriod bounds how long one disposal may stay unresolved.
	SettleDelay  time.Duration `env:"DISCARD_SETTLE_DELAY" envDefault:"800ms"`
	PollInterval time.Duration `env:"DISCARD_POLL_INTERVAL" envDefault:"250ms"`
	GracePeriod  time.Duration `env:"DISCARD_GRACE_PERIOD" envDefault:"15s"`
}
