package ratelimiter

import (
	"golang.org/x/time/rate"
)

// NewOutboundLimiter bounds the request rate against the timetable API so a
// burst of conflict checks cannot flood the academic backend. The burst size
// matches one full pagination page fan-out.
func NewOutboundLimiter(requestsPerSecond int) *rate.Limiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 20
	}
	return rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
}
