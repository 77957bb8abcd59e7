package http

import "golang.org/x/time/rate"

// newMessageLimiter returns a per-connection token bucket for inbound
// envelopes. A rate of zero or less disables limiting (nil limiter).
func newMessageLimiter(perSec float64, burst int) *rate.Limiter {
	if perSec <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSec), burst)
}

func allowMessage(l *rate.Limiter) bool {
	return l == nil || l.Allow()
}
