package company

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
)

//
// DOMAIN EXISTENCE PROBE
//

type probeResult struct {
	Domain     string
	HTTPS      bool
	Accessible bool
}

// probeDomain tries HTTPS first and falls back to HTTP. Any response below
// 500 means the domain exists.
func (v *Verifier) probeDomain(ctx context.Context, domain string) (probeResult, bool) {
	for _, scheme := range []string{"https", "http"} {
		status, err := v.status(ctx, scheme+"://"+domain)
		if err != nil {
			log.Printf("[Probe] %s://%s unreachable: %v", scheme, domain, err)
			continue
		}
		if status < http.StatusInternalServerError {
			return probeResult{
				Domain:     domain,
				HTTPS:      scheme == "https",
				Accessible: status == http.StatusOK,
			}, true
		}
		log.Printf("[Probe] %s://%s returned %d", scheme, domain, status)
	}
	return probeResult{}, false
}

// probeHost checks the host of a submitted URL.
func (v *Verifier) probeHost(ctx context.Context, host string) (*Evidence, error) {
	res, ok := v.probeDomain(ctx, host)
	if !ok {
		return nil, nil
	}
	return v.probeEvidence(ctx, res), nil
}

// probeCandidates checks generated domains in order and stops at the first
// one that exists.
func (v *Verifier) probeCandidates(ctx context.Context, name string) (*Evidence, error) {
	for _, domain := range CandidateDomains(name) {
		if ctx.Err() != nil {
			return nil, nil
		}
		if res, ok := v.probeDomain(ctx, domain); ok {
			return v.probeEvidence(ctx, res), nil
		}
	}
	return nil, nil
}

func (v *Verifier) probeEvidence(ctx context.Context, res probeResult) *Evidence {
	attrs := Attributes{
		Domain:            res.Domain,
		WebsiteAccessible: boolPtr(res.Accessible),
		HTTPSEnabled:      boolPtr(res.HTTPS),
	}
	if v.whois != nil {
		// WHOIS wants the bare host; the probe may have used host:port.
		host := (&url.URL{Host: res.Domain}).Hostname()
		rec, err := v.whois(ctx, host)
		if err != nil {
			log.Printf("[WHOIS] %s: %v", host, err)
		} else {
			attrs.Registrar = rec.Registrar
			attrs.DomainCreated = rec.Created
		}
	}
	return &Evidence{Source: SourceDomainProbe, Attributes: attrs}
}

func (v *Verifier) newRequest(ctx context.Context, rawURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", v.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	return req, nil
}

// status performs a bounded GET and returns only the status code.
func (v *Verifier) status(ctx context.Context, rawURL string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	req, err := v.newRequest(ctx, rawURL)
	if err != nil {
		return 0, err
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))

	return resp.StatusCode, nil
}
