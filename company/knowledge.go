package company

import "strings"

// Profile is the canonical record for a well-known company.
type Profile struct {
	CompanyName   string `yaml:"company_name"`
	Industry      string `yaml:"industry"`
	Location      string `yaml:"location"`
	Description   string `yaml:"description"`
	Domain        string `yaml:"domain"`
	FoundedYear   int    `yaml:"founded_year,omitempty"`
	EmployeeCount string `yaml:"employee_count,omitempty"`
}

// KnownCompany binds a lowercase name fragment to its profile.
type KnownCompany struct {
	Key     string `yaml:"key"`
	Profile `yaml:",inline"`
}

// KnowledgeBase is a read-only, ordered list of known companies.
type KnowledgeBase struct {
	entries []KnownCompany
}

func NewKnowledgeBase(entries []KnownCompany) *KnowledgeBase {
	kb := &KnowledgeBase{entries: make([]KnownCompany, 0, len(entries))}
	for _, e := range entries {
		e.Key = normalizeName(e.Key)
		if e.Key != "" {
			kb.entries = append(kb.entries, e)
		}
	}
	return kb
}

// Lookup matches when a key is a substring of the normalized name or the
// normalized name is a substring of a key. The first entry that matches wins.
func (kb *KnowledgeBase) Lookup(name string) (Profile, bool) {
	norm := normalizeName(name)
	if norm == "" {
		return Profile{}, false
	}
	for _, e := range kb.entries {
		if strings.Contains(norm, e.Key) || strings.Contains(e.Key, norm) {
			return e.Profile, true
		}
	}
	return Profile{}, false
}

func (kb *KnowledgeBase) Len() int { return len(kb.entries) }

// Domains lists every entry's domain in entry order, skipping blanks.
func (kb *KnowledgeBase) Domains() []string {
	var out []string
	for _, e := range kb.entries {
		if d := strings.TrimSpace(e.Domain); d != "" {
			out = append(out, d)
		}
	}
	return out
}

func normalizeName(name string) string {
	r := strings.NewReplacer(" ", "", ".", "", ",", "")
	return r.Replace(strings.ToLower(strings.TrimSpace(name)))
}

func (p Profile) attributes() Attributes {
	return Attributes{
		CompanyName:   p.CompanyName,
		Domain:        p.Domain,
		Industry:      p.Industry,
		Location:      p.Location,
		Description:   p.Description,
		FoundedYear:   p.FoundedYear,
		EmployeeCount: p.EmployeeCount,
	}
}

// DefaultKnownCompanies is the built-in knowledge base.
var DefaultKnownCompanies = []KnownCompany{
	{Key: "google", Profile: Profile{
		CompanyName:   "Google LLC",
		Industry:      "Technology",
		Location:      "Mountain View, California, USA",
		Description:   "Technology company specializing in internet services and products",
		Domain:        "google.com",
		FoundedYear:   1998,
		EmployeeCount: "150,000+",
	}},
	{Key: "microsoft", Profile: Profile{
		CompanyName:   "Microsoft Corporation",
		Industry:      "Technology",
		Location:      "Redmond, Washington, USA",
		Description:   "Technology company developing software and hardware",
		Domain:        "microsoft.com",
		FoundedYear:   1975,
		EmployeeCount: "180,000+",
	}},
	{Key: "apple", Profile: Profile{
		CompanyName:   "Apple Inc.",
		Industry:      "Technology",
		Location:      "Cupertino, California, USA",
		Description:   "Technology company designing consumer electronics and software",
		Domain:        "apple.com",
		FoundedYear:   1976,
		EmployeeCount: "154,000+",
	}},
	{Key: "amazon", Profile: Profile{
		CompanyName:   "Amazon.com Inc.",
		Industry:      "E-commerce",
		Location:      "Seattle, Washington, USA",
		Description:   "E-commerce and cloud computing company",
		Domain:        "amazon.com",
		FoundedYear:   1994,
		EmployeeCount: "1,300,000+",
	}},
	{Key: "facebook", Profile: Profile{
		CompanyName:   "Meta Platforms Inc.",
		Industry:      "Social Media",
		Location:      "Menlo Park, California, USA",
		Description:   "Social media and technology company",
		Domain:        "meta.com",
		FoundedYear:   2004,
		EmployeeCount: "85,000+",
	}},
	{Key: "securden", Profile: Profile{
		CompanyName:   "Securden",
		Industry:      "Cybersecurity",
		Location:      "Chennai, Tamil Nadu, India",
		Description:   "Cybersecurity company specializing in privileged access management",
		Domain:        "securden.com",
		FoundedYear:   2018,
		EmployeeCount: "50-100",
	}},
	{Key: "mcafee", Profile: Profile{
		CompanyName:   "McAfee Corp",
		Industry:      "Cybersecurity",
		Location:      "Santa Clara, California, USA",
		Description:   "Global cybersecurity company providing protection against viruses and malware",
		Domain:        "mcafee.com",
		FoundedYear:   1987,
		EmployeeCount: "7,000+",
	}},
}
