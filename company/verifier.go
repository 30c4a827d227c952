package company

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const msgNoSources = "No verification sources found this company. It may be fake or non-existent."

// ErrEmptyInput is reported when Verify is given nothing to verify.
var ErrEmptyInput = errors.New("Company name or URL is required")

// Verifier checks whether a company name or website looks like a real
// company by fusing evidence from several independent lookups. It holds only
// read-only configuration and is safe for concurrent use.
type Verifier struct {
	client      *http.Client
	userAgent   string
	timeout     time.Duration
	apiKey      string
	clearbitURL string
	kb          *KnowledgeBase
	whois       WhoisLookup
	renderer    Renderer
}

func New(opts ...Option) *Verifier {
	v := &Verifier{
		client:      &http.Client{Timeout: maxTimeout},
		userAgent:   DefaultUserAgent,
		timeout:     DefaultTimeout,
		clearbitURL: DefaultClearbitURL,
		kb:          NewKnowledgeBase(DefaultKnownCompanies),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// lookup is one evidence source. A nil Evidence with a nil error means the
// source had nothing to say; an error is an unexpected internal failure.
type lookup struct {
	source SourceKind
	run    func(ctx context.Context) (*Evidence, error)
}

// Verify never fails: bad input, unreachable sources and internal errors all
// come back as an unverified Verdict.
func (v *Verifier) Verify(ctx context.Context, input string) (verdict Verdict) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Verdict{
			Confidence: ConfidenceLow,
			Sources:    []SourceKind{},
			Error:      ErrEmptyInput.Error(),
		}
	}

	defer func() {
		if r := recover(); r != nil {
			verdict = failedVerdict(input, fmt.Errorf("%v", r))
		}
	}()

	var err error
	if u, ok := parseURL(input); ok {
		verdict, err = v.verifyURL(ctx, input, u)
	} else {
		verdict, err = v.verifyName(ctx, input)
	}
	if err != nil {
		log.Printf("[Verify] %q failed: %v", input, err)
		return failedVerdict(input, err)
	}

	log.Printf("[Verify] %q -> verified=%t confidence=%s sources=%v",
		input, verdict.Verified, verdict.Confidence, verdict.Sources)
	return verdict
}

func (v *Verifier) verifyURL(ctx context.Context, raw string, u *url.URL) (Verdict, error) {
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	authority := strings.TrimPrefix(strings.ToLower(u.Host), "www.")

	evidence, err := v.gather(ctx, []lookup{
		{SourceContentScrape, func(ctx context.Context) (*Evidence, error) { return v.scrapeSite(ctx, raw) }},
		{SourceDomainProbe, func(ctx context.Context) (*Evidence, error) { return v.probeHost(ctx, authority) }},
		{SourceDerivedName, func(ctx context.Context) (*Evidence, error) { return v.deriveName(ctx, host) }},
	})
	if err != nil {
		return Verdict{}, err
	}
	return fuse(host, evidence), nil
}

func (v *Verifier) verifyName(ctx context.Context, name string) (Verdict, error) {
	evidence, err := v.gather(ctx, []lookup{
		{SourceThirdPartyAPI, func(ctx context.Context) (*Evidence, error) { return v.searchClearbit(ctx, name) }},
		{SourceKnowledgeBase, func(ctx context.Context) (*Evidence, error) { return v.lookupKnown(name), nil }},
		{SourceDomainProbe, func(ctx context.Context) (*Evidence, error) { return v.probeCandidates(ctx, name) }},
		{SourcePatternHeuristic, func(ctx context.Context) (*Evidence, error) { return v.checkNamePatterns(ctx, name) }},
	})
	if err != nil {
		return Verdict{}, err
	}
	return fuse(name, evidence), nil
}

// gather runs every lookup concurrently. Each lookup writes only its own
// slot, so the returned evidence keeps the order of lookups regardless of
// which finished first.
func (v *Verifier) gather(ctx context.Context, lookups []lookup) ([]Evidence, error) {
	slots := make([]*Evidence, len(lookups))

	g, gctx := errgroup.WithContext(ctx)
	for i, l := range lookups {
		i, l := i, l
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%s lookup panicked: %v", l.source, r)
				}
			}()
			ev, runErr := l.run(gctx)
			if runErr != nil {
				return fmt.Errorf("%s: %w", l.source, runErr)
			}
			slots[i] = ev
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	evidence := make([]Evidence, 0, len(slots))
	for _, ev := range slots {
		if ev != nil {
			evidence = append(evidence, *ev)
		}
	}
	return evidence, nil
}

func (v *Verifier) lookupKnown(name string) *Evidence {
	p, ok := v.kb.Lookup(name)
	if !ok {
		return nil
	}
	return &Evidence{Source: SourceKnowledgeBase, Attributes: p.attributes()}
}

// deriveName guesses a company name from the domain and verifies it by name.
// It only contributes when that verification succeeds.
func (v *Verifier) deriveName(ctx context.Context, domain string) (*Evidence, error) {
	name := NameFromDomain(domain)
	if name == "" {
		return nil, nil
	}
	res, err := v.verifyName(ctx, name)
	if err != nil {
		log.Printf("[Verify] derived name %q from %s failed: %v", name, domain, err)
		return nil, nil
	}
	if !res.Verified {
		return nil, nil
	}
	return &Evidence{
		Source: SourceDerivedName,
		Attributes: Attributes{
			CompanyName: res.CompanyName,
			Domain:      res.Domain,
			Description: res.Description,
			Industry:    res.Industry,
			Location:    res.Location,
		},
	}, nil
}

// fuse folds evidence left to right. The first item to supply an attribute
// keeps it; tiers vote on confidence.
func fuse(displayKey string, evidence []Evidence) Verdict {
	verdict := Verdict{
		Confidence: ConfidenceLow,
		Sources:    []SourceKind{},
	}
	verdict.SourcesChecked = len(evidence)

	if len(evidence) == 0 {
		verdict.CompanyName = displayKey
		verdict.Error = msgNoSources
		verdict.Summary = summarize(0, 0)
		return verdict
	}

	var high, medium int
	for _, ev := range evidence {
		switch ev.Source.Tier() {
		case TierHigh:
			high++
		case TierMedium:
			medium++
		}
		verdict.Attributes.fill(ev.Attributes)
		verdict.Sources = append(verdict.Sources, ev.Source)
	}
	if verdict.CompanyName == "" {
		verdict.CompanyName = displayKey
	}

	total := len(evidence)
	switch {
	case high >= 1:
		verdict.Verified = true
		verdict.Confidence = ConfidenceHigh
	case medium >= 2 || (medium >= 1 && total >= 3):
		verdict.Verified = true
		verdict.Confidence = ConfidenceMedium
	case medium >= 1:
		verdict.Verified = true
		verdict.Confidence = ConfidenceLow
	default:
		verdict.Error = fmt.Sprintf("Company %q could not be verified. It may be fake or non-existent.", displayKey)
	}
	verdict.IsReal = verdict.Verified
	verdict.Summary = summarize(total, high)
	return verdict
}

func summarize(total, high int) string {
	return fmt.Sprintf("Checked %d sources, %d high-confidence matches found", total, high)
}

func failedVerdict(input string, err error) Verdict {
	return Verdict{
		Confidence: ConfidenceLow,
		Attributes: Attributes{CompanyName: input},
		Sources:    []SourceKind{},
		Error:      fmt.Sprintf("Verification failed: %v", err),
	}
}

// parseURL accepts input with both a scheme and an authority.
func parseURL(raw string) (*url.URL, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, false
	}
	return u, true
}
