package company

import (
	"context"
	"fmt"
	"strings"
	"time"

	whois "github.com/likexian/whois"
	parser "github.com/likexian/whois-parser"
	"golang.org/x/net/publicsuffix"
)

//
// WHOIS ENRICHMENT
//

// WhoisRecord is the registration data attached to domain-probe evidence.
type WhoisRecord struct {
	Registrar string
	Created   string // 2006-01-02
}

// WhoisLookup fetches registration data for a domain.
type WhoisLookup func(ctx context.Context, domain string) (WhoisRecord, error)

var whoisDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-Jan-2006",
	"2006.01.02",
}

// NewWhoisLookup queries WHOIS for the registrable domain of the probed host,
// so www.example.co.uk is looked up as example.co.uk.
func NewWhoisLookup(timeout time.Duration) WhoisLookup {
	client := whois.NewClient().SetTimeout(timeout)

	return func(ctx context.Context, domain string) (WhoisRecord, error) {
		if err := ctx.Err(); err != nil {
			return WhoisRecord{}, err
		}

		registrable, err := publicsuffix.EffectiveTLDPlusOne(strings.ToLower(domain))
		if err != nil {
			return WhoisRecord{}, fmt.Errorf("registrable domain: %w", err)
		}

		raw, err := client.Whois(registrable)
		if err != nil {
			return WhoisRecord{}, fmt.Errorf("whois query: %w", err)
		}

		info, err := parser.Parse(raw)
		if err != nil {
			return WhoisRecord{}, fmt.Errorf("whois parse: %w", err)
		}

		var rec WhoisRecord
		if info.Registrar != nil {
			rec.Registrar = strings.TrimSpace(info.Registrar.Name)
		}
		if info.Domain != nil {
			rec.Created = parseWhoisDate(info.Domain.CreatedDate)
		}
		return rec, nil
	}
}

func parseWhoisDate(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range whoisDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}
