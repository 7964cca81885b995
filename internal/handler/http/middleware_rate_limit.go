package http

import (
	"net"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-poke-keeper/internal/logger"
	"github.com/MKhiriev/go-poke-keeper/internal/utils"
	"github.com/go-chi/httprate"
)

const tooManyRequestsMessage = "too many requests, please try again later"

// withRateLimit allows cfg.RateLimitRequests requests per client key in every
// cfg.RateLimitWindow. Rejected requests get 429 and the X-RateLimit-*
// headers set by httprate.
func (h *Handler) withRateLimit() func(http.Handler) http.Handler {
	return httprate.Limit(
		h.cfg.RateLimitRequests,
		h.cfg.RateLimitWindow,
		httprate.WithKeyFuncs(clientKey),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			logger.FromRequest(r).Warn().Str("remote_addr", r.RemoteAddr).Msg("rate limit exceeded")
			utils.WriteMessage(w, tooManyRequestsMessage, http.StatusTooManyRequests)
		}),
	)
}

// clientKey identifies the caller by the first X-Forwarded-For entry, or by
// the host part of the connection's remote address.
func clientKey(r *http.Request) (string, error) {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first, nil
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr, nil
	}
	return host, nil
}
