package company

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

//
// CLEARBIT COMPANY API
//

const DefaultClearbitURL = "https://company.clearbit.com/v2/companies/find"

type clearbitCompany struct {
	Name        string `json:"name"`
	Domain      string `json:"domain"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	FoundedYear int    `json:"foundedYear"`
	Category    struct {
		Industry string `json:"industry"`
	} `json:"category"`
	Geo struct {
		City    string `json:"city"`
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"geo"`
	Metrics struct {
		Employees *int `json:"employees"`
	} `json:"metrics"`
	Social map[string]struct {
		Handle string `json:"handle"`
	} `json:"social"`
}

var socialProfileURLs = []struct {
	Network string
	Prefix  string
}{
	{"twitter", "https://twitter.com/"},
	{"linkedin", "https://linkedin.com/company/"},
	{"facebook", "https://facebook.com/"},
}

// searchClearbit looks a company up by name. Only a malformed 200 payload is
// reported as an error; every other failure means no evidence.
func (v *Verifier) searchClearbit(ctx context.Context, name string) (*Evidence, error) {
	if v.apiKey == "" {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	endpoint := v.clearbitURL + "?" + url.Values{"name": {name}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Printf("[Clearbit] build request: %v", err)
		return nil, nil
	}
	req.Header.Set("Authorization", "Bearer "+v.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", v.userAgent)

	resp, err := v.client.Do(req)
	if err != nil {
		log.Printf("[Clearbit] request failed for %q: %v", name, err)
		return nil, nil
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		log.Printf("[Clearbit] no match for %q", name)
		return nil, nil
	default:
		log.Printf("[Clearbit] API error for %q: %s", name, resp.Status)
		return nil, nil
	}

	var data clearbitCompany
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode clearbit response: %w", err)
	}

	return &Evidence{Source: SourceThirdPartyAPI, Attributes: data.attributes()}, nil
}

func (c clearbitCompany) attributes() Attributes {
	attrs := Attributes{
		CompanyName: c.Name,
		Domain:      c.Domain,
		Description: c.Description,
		Industry:    c.Category.Industry,
		Location:    joinNonEmpty(c.Geo.City, c.Geo.State, c.Geo.Country),
		FoundedYear: c.FoundedYear,
		LogoURL:     c.Logo,
	}
	if c.Metrics.Employees != nil {
		attrs.EmployeeCount = strconv.Itoa(*c.Metrics.Employees)
	}

	links := map[string]string{}
	for _, p := range socialProfileURLs {
		if h := c.Social[p.Network].Handle; h != "" {
			links[p.Network] = p.Prefix + h
		}
	}
	if len(links) > 0 {
		attrs.SocialLinks = links
	}
	return attrs
}

func joinNonEmpty(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}
