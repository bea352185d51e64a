package ratelimit

// NopLimiter admits every request. Used when rate limiting is switched off.
type NopLimiter struct{}

// Allow always admits.
func (NopLimiter) Allow(string) bool { return true }

var _ Limiter = NopLimiter{}
