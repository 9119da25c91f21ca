package middleware

import (
	"net/http"
	"net/netip"
	"time"

	"github.com/folio/pkg/endpoint"
	"github.com/folio/pkg/limiter"
	"github.com/folio/pkg/portal"
)

type ThrottleMiddleware struct {
	limiter        *limiter.MemoryLimiter
	trustedProxies []netip.Prefix
}

// MakeThrottleMiddleware limits each client to maxHits per window. Clients are
// keyed by socket peer; X-Forwarded-For is only read from trustedProxies.
func MakeThrottleMiddleware(window time.Duration, maxHits int, trustedProxies ...netip.Prefix) ThrottleMiddleware {
	return ThrottleMiddleware{
		limiter:        limiter.NewMemoryLimiter(window, maxHits),
		trustedProxies: trustedProxies,
	}
}

func (t ThrottleMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		if t.limiter == nil {
			return next(w, r)
		}

		key := portal.ClientIP(r, t.trustedProxies)

		if t.limiter.TooMany(key) {
			w.Header().Set("Retry-After", "60")

			return endpoint.TooManyRequests("slow down")
		}

		t.limiter.Hit(key)

		return next(w, r)
	}
}
