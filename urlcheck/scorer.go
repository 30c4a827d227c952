package urlcheck

import (
	"fmt"
	"log"
	"strings"
)

type Status string

const (
	StatusSafe       Status = "SAFE"
	StatusSuspicious Status = "SUSPICIOUS"
	StatusFraud      Status = "FRAUD"
	StatusInvalid    Status = "INVALID"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

const (
	ReasonSafe    = "URL appears to be safe"
	ReasonInvalid = "Invalid URL format"
)

// Verdict is the result of scoring a single URL.
// RiskScore is nil for INVALID input.
type Verdict struct {
	URL       string         `json:"url"`
	Status    Status         `json:"status"`
	RiskLevel RiskLevel      `json:"risk_level"`
	RiskScore *int           `json:"risk_score,omitempty"`
	Reasons   []string       `json:"reasons"`
	Breakdown map[string]int `json:"breakdown,omitempty"`
}

// Scorer computes URL risk from a fixed set of signals. It holds no mutable
// state and is safe for concurrent use.
type Scorer struct {
	keywords   []string
	shorteners []string
	ownDomains map[string]bool
}

func New(opts ...Option) *Scorer {
	s := &Scorer{
		keywords:   DefaultSuspiciousKeywords,
		shorteners: DefaultShorteners,
		ownDomains: make(map[string]bool, len(DefaultOwnDomains)),
	}
	for _, d := range DefaultOwnDomains {
		s.ownDomains[d] = true
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score never fails: malformed input yields an INVALID verdict.
func (s *Scorer) Score(raw string) Verdict {
	u, ok := parseURL(raw)
	if !ok {
		return Verdict{
			URL:       raw,
			Status:    StatusInvalid,
			RiskLevel: RiskHigh,
			Reasons:   []string{ReasonInvalid},
		}
	}

	const (
		weightNoHTTPS    = 2
		weightTooLong    = 1
		weightIPAddress  = 3
		weightPerKeyword = 1
		weightShortener  = 2
		weightSubdomains = 2
	)

	score := 0
	reasons := []string{}
	breakdown := map[string]int{}

	add := func(check string, points int, reason string) {
		score += points
		breakdown[check] = points
		reasons = append(reasons, reason)
	}

	if !hasHTTPS(u) {
		add("no_https", weightNoHTTPS, "No HTTPS encryption")
	}
	if isTooLong(raw) {
		add("long_url", weightTooLong, "Unusually long URL")
	}
	if usesIPAddress(u) {
		add("ip_address", weightIPAddress, "Uses IP address instead of domain name")
	}
	if hits := keywordHits(raw, u, s.keywords, s.ownDomains); len(hits) > 0 {
		add("keywords", len(hits)*weightPerKeyword,
			fmt.Sprintf("Contains suspicious keywords: %s", strings.Join(hits, ", ")))
	}
	if isShortened(u, s.shorteners) {
		add("shortener", weightShortener, "Uses URL shortening service")
	}
	if hasManySubdomains(u) {
		add("subdomains", weightSubdomains, "Has multiple suspicious subdomains")
	}

	status, level := classify(score)
	if score == 0 {
		reasons = []string{ReasonSafe}
		breakdown = nil
	}

	log.Printf("[Scorer] %s -> %s (score %d)", raw, status, score)

	return Verdict{
		URL:       raw,
		Status:    status,
		RiskLevel: level,
		RiskScore: &score,
		Reasons:   reasons,
		Breakdown: breakdown,
	}
}

// classify maps an additive risk score onto a verdict.
func classify(score int) (Status, RiskLevel) {
	switch {
	case score <= 0:
		return StatusSafe, RiskLow
	case score <= 3:
		return StatusSuspicious, RiskMedium
	default:
		return StatusFraud, RiskHigh
	}
}
