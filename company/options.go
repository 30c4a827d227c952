package company

import (
	"net/http"
	"time"
)

const (
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultTimeout   = 5 * time.Second

	minTimeout = 5 * time.Second
	maxTimeout = 10 * time.Second
)

// Option configures a Verifier.
type Option func(*Verifier)

// WithHTTPClient sets the client used for every outbound probe.
func WithHTTPClient(c *http.Client) Option {
	return func(v *Verifier) {
		if c != nil {
			v.client = c
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(v *Verifier) {
		if ua != "" {
			v.userAgent = ua
		}
	}
}

// WithTimeout sets the per-lookup timeout, clamped to [5s, 10s].
func WithTimeout(d time.Duration) Option {
	return func(v *Verifier) {
		v.timeout = ClampTimeout(d)
	}
}

// WithAPIKey enables the third-party company API lookup.
func WithAPIKey(key string) Option {
	return func(v *Verifier) { v.apiKey = key }
}

func WithClearbitURL(u string) Option {
	return func(v *Verifier) {
		if u != "" {
			v.clearbitURL = u
		}
	}
}

func WithKnowledgeBase(kb *KnowledgeBase) Option {
	return func(v *Verifier) {
		if kb != nil {
			v.kb = kb
		}
	}
}

// WithWhois enriches domain-probe evidence with registration data.
func WithWhois(w WhoisLookup) Option {
	return func(v *Verifier) { v.whois = w }
}

// WithRenderer enables the headless render fallback for the content scrape.
func WithRenderer(r Renderer) Option {
	return func(v *Verifier) { v.renderer = r }
}

// ClampTimeout bounds a per-lookup timeout to [5s, 10s]; zero or negative
// means DefaultTimeout.
func ClampTimeout(d time.Duration) time.Duration {
	switch {
	case d <= 0:
		return DefaultTimeout
	case d < minTimeout:
		return minTimeout
	case d > maxTimeout:
		return maxTimeout
	}
	return d
}
