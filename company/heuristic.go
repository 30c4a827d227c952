package company

import (
	"context"
	"fmt"
	"unicode/utf8"
)

const (
	heuristicProbeLimit   = 3
	heuristicMinIndicator = 2
	minNameLength         = 3
	maxNameLength         = 30
)

// checkNamePatterns collects independent legitimacy indicators for a bare
// name. It only counts as evidence when one of the first candidate domains
// answered and at least two indicators hold; name shape alone proves nothing.
func (v *Verifier) checkNamePatterns(ctx context.Context, name string) (*Evidence, error) {
	var (
		indicators []string
		domain     string
	)

	candidates := CandidateDomains(name)
	if len(candidates) > heuristicProbeLimit {
		candidates = candidates[:heuristicProbeLimit]
	}
	for _, d := range candidates {
		if _, ok := v.probeDomain(ctx, d); ok {
			indicators = append(indicators, fmt.Sprintf("Active website: %s", d))
			domain = d
			break
		}
	}

	if IsLegitimateName(name) {
		indicators = append(indicators, "Legitimate company name pattern")
	}
	if hasBusinessSuffix(name) {
		indicators = append(indicators, "Contains legal business suffix")
	}
	if n := utf8.RuneCountInString(name); n >= minNameLength && n <= maxNameLength {
		indicators = append(indicators, "Appropriate name length")
	}

	if domain == "" || len(indicators) < heuristicMinIndicator {
		return nil, nil
	}
	return &Evidence{
		Source: SourcePatternHeuristic,
		Attributes: Attributes{
			Domain:           domain,
			SearchIndicators: indicators,
		},
	}, nil
}
