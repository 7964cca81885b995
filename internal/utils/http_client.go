package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures an HTTPClient at construction time.
type HTTPClientOption func(c *resty.Client)

// WithBaseURL sets the base URL all relative request paths resolve against.
func WithBaseURL(url string) HTTPClientOption {
	return func(c *resty.Client) { c.SetBaseURL(url) }
}

// WithTimeout sets the overall per-attempt timeout.
func WithTimeout(d time.Duration) HTTPClientOption {
	return func(c *resty.Client) { c.SetTimeout(d) }
}

// WithRetry enables up to count retries of transient failures: transport
// errors, 429 and 5xx responses. wait is the initial backoff, doubled on
// every attempt up to eight times its value.
func WithRetry(count int, wait time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetRetryCount(count).
			SetRetryWaitTime(wait).
			SetRetryMaxWaitTime(8 * wait).
			AddRetryCondition(IsTransientFailure)
	}
}

// IsTransientFailure reports whether a request outcome is worth retrying.
func IsTransientFailure(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp == nil {
		return false
	}
	code := resp.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// NewHTTPClient creates and returns a new HTTPClient instance that accepts
// JSON by default and is configured by opts.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient(
//	    utils.WithBaseURL("https://pokeapi.co/api/v2"),
//	    utils.WithTimeout(5*time.Second),
//	)
//	resp, err := client.R().Get("/pokemon/pikachu")
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	c := resty.New().SetHeader("Accept", "application/json")
	for _, opt := range opts {
		opt(c)
	}
	return &HTTPClient{Client: c}
}
