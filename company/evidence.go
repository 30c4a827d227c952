package company

// SourceKind names the lookup method an Evidence item came from.
type SourceKind string

const (
	SourceKnowledgeBase    SourceKind = "knowledge_base"
	SourceDomainProbe      SourceKind = "domain_probe"
	SourceContentScrape    SourceKind = "content_scrape"
	SourceThirdPartyAPI    SourceKind = "third_party_api"
	SourcePatternHeuristic SourceKind = "pattern_heuristic"
	SourceDerivedName      SourceKind = "derived_name"
)

// Tier is the reliability weight of a source. It only votes on confidence;
// attribute precedence comes from fusion order.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
)

var sourceTiers = map[SourceKind]Tier{
	SourceKnowledgeBase:    TierHigh,
	SourceThirdPartyAPI:    TierHigh,
	SourceContentScrape:    TierHigh,
	SourceDomainProbe:      TierMedium,
	SourcePatternHeuristic: TierMedium,
	SourceDerivedName:      TierMedium,
}

func (k SourceKind) Tier() Tier {
	return sourceTiers[k]
}

// Attributes is the set of company facts a source may supply. Zero values
// mean "not supplied".
type Attributes struct {
	CompanyName       string            `json:"company_name"`
	Domain            string            `json:"domain,omitempty"`
	Industry          string            `json:"industry,omitempty"`
	Location          string            `json:"location,omitempty"`
	Description       string            `json:"description,omitempty"`
	FoundedYear       int               `json:"founded_year,omitempty"`
	EmployeeCount     string            `json:"employee_count,omitempty"`
	SocialLinks       map[string]string `json:"social_links,omitempty"`
	ContactEmail      string            `json:"email,omitempty"`
	ContactPhone      string            `json:"phone,omitempty"`
	Address           string            `json:"address,omitempty"`
	SearchIndicators  []string          `json:"search_indicators,omitempty"`
	URL               string            `json:"url,omitempty"`
	WebsiteTitle      string            `json:"website_title,omitempty"`
	AboutText         string            `json:"about_text,omitempty"`
	LogoURL           string            `json:"logo_url,omitempty"`
	WebsiteAccessible *bool             `json:"website_accessible,omitempty"`
	HTTPSEnabled      *bool             `json:"https_enabled,omitempty"`
	Registrar         string            `json:"registrar,omitempty"`
	DomainCreated     string            `json:"domain_created,omitempty"`
}

// fill copies every attribute src supplies that a does not have yet.
func (a *Attributes) fill(src Attributes) {
	fillString(&a.CompanyName, src.CompanyName)
	fillString(&a.Domain, src.Domain)
	fillString(&a.Industry, src.Industry)
	fillString(&a.Location, src.Location)
	fillString(&a.Description, src.Description)
	if a.FoundedYear == 0 {
		a.FoundedYear = src.FoundedYear
	}
	fillString(&a.EmployeeCount, src.EmployeeCount)
	if len(a.SocialLinks) == 0 && len(src.SocialLinks) > 0 {
		a.SocialLinks = src.SocialLinks
	}
	fillString(&a.ContactEmail, src.ContactEmail)
	fillString(&a.ContactPhone, src.ContactPhone)
	fillString(&a.Address, src.Address)
	if len(a.SearchIndicators) == 0 && len(src.SearchIndicators) > 0 {
		a.SearchIndicators = src.SearchIndicators
	}
	fillString(&a.URL, src.URL)
	fillString(&a.WebsiteTitle, src.WebsiteTitle)
	fillString(&a.AboutText, src.AboutText)
	fillString(&a.LogoURL, src.LogoURL)
	if a.WebsiteAccessible == nil {
		a.WebsiteAccessible = src.WebsiteAccessible
	}
	if a.HTTPSEnabled == nil {
		a.HTTPSEnabled = src.HTTPSEnabled
	}
	fillString(&a.Registrar, src.Registrar)
	fillString(&a.DomainCreated, src.DomainCreated)
}

func fillString(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

// Evidence is one lookup's partial contribution toward verifying a company.
type Evidence struct {
	Source     SourceKind
	Attributes Attributes
}

type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Verdict is the fused result of a company verification. IsReal always
// mirrors Verified.
type Verdict struct {
	Verified   bool       `json:"verified"`
	IsReal     bool       `json:"is_real"`
	Confidence Confidence `json:"confidence"`
	Attributes
	Sources        []SourceKind `json:"sources"`
	SourcesChecked int          `json:"sources_checked"`
	Summary        string       `json:"verification_summary,omitempty"`
	Error          string       `json:"error,omitempty"`
}

func boolPtr(b bool) *bool { return &b }
