package scan

import "time"

// Config holds the timing parameters of a slow-scan write. The zero value is
// valid and writes with no pauses; DefaultConfig returns the default tuning.
//
// All durations must be non-negative. A zero duration is a no-op pause: the
// next unit is written immediately.
type Config struct {
	// BaseDelay is the pause after a plain unit. Byte-chunk writes use it for
	// every chunk.
	BaseDelay time.Duration
	// FullWidthDelay is the pause after a wide rune. It is independent of
	// BaseDelay; doubling the base delay is only a convenience default
	// applied by the host when no explicit value is configured.
	FullWidthDelay time.Duration
	// ControlDelay is the pause after a control rune, like a newline or tab.
	ControlDelay time.Duration
	// TailDelay controls whether a pause is also inserted after the last
	// unit of a sequence.
	TailDelay bool
}

// DefaultConfig returns the default configuration: 20ms base delay, 40ms
// full-width delay, no control delay, no tail delay.
func DefaultConfig() Config {
	return Config{
		BaseDelay:      20 * time.Millisecond,
		FullWidthDelay: 40 * time.Millisecond,
	}
}

// delayFor returns the delay field matching the class of r.
func (cfg Config) delayFor(r rune) time.Duration {
	switch ClassOf(r) {
	case Wide:
		return cfg.FullWidthDelay
	case Control:
		return cfg.ControlDelay
	default:
		return cfg.BaseDelay
	}
}

// BaseDelayForTotal returns the base delay that makes a sequence of n units
// take approximately total to write. The number of pauses is n when tailDelay
// is set and n-1 otherwise; the result is total divided by the number of
// pauses, or zero when there are none.
func BaseDelayForTotal(total time.Duration, n int, tailDelay bool) time.Duration {
	pauses := n
	if !tailDelay {
		pauses--
	}
	if pauses <= 0 {
		return 0
	}
	return total / time.Duration(pauses)
}

// WithBaseDelayForTotal returns a copy of cfg whose BaseDelay is derived with
// BaseDelayForTotal from cfg.TailDelay, so that writing n units takes
// approximately total. Other delay fields are left unchanged.
func (cfg Config) WithBaseDelayForTotal(total time.Duration, n int) Config {
	cfg.BaseDelay = BaseDelayForTotal(total, n, cfg.TailDelay)
	return cfg
}
