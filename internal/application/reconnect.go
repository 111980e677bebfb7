package application

import (
	"math"
	"time"
)

// ReconnectPolicy spaces out consecutive reconnects. The zero value
// reconnects immediately, forever.
type ReconnectPolicy struct {
	Delay      time.Duration
	MaxDelay   time.Duration
	Multiplier float64
}

// Next returns the wait before reconnect number attempt, counting from 0.
// Without a MaxDelay the wait saturates at the largest time.Duration.
func (p ReconnectPolicy) Next(attempt int) time.Duration {
	if p.Delay <= 0 {
		return 0
	}

	multiplier := p.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}

	delay := float64(p.Delay)
	for i := 0; i < attempt; i++ {
		delay *= multiplier
		if p.MaxDelay > 0 && delay >= float64(p.MaxDelay) {
			return p.MaxDelay
		}
		if delay >= math.MaxInt64 {
			return time.Duration(math.MaxInt64)
		}
	}

	if p.MaxDelay > 0 && time.Duration(delay) > p.MaxDelay {
		return p.MaxDelay
	}
	return time.Duration(delay)
}
