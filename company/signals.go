package company

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

//
// NAME SIGNALS
//

var (
	nonAlnumSpace = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	nonAlnum      = regexp.MustCompile(`[^a-zA-Z0-9]`)
	legalSuffix   = regexp.MustCompile(`\b(inc|llc|corp|corporation|ltd|limited|co|company)\b`)
	commonTLD     = regexp.MustCompile(`\.(com|net|org|co|io|ai|tech|app|dev)$`)
)

var suspiciousNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^test`),
	regexp.MustCompile(`^fake`),
	regexp.MustCompile(`^scam`),
	regexp.MustCompile(`test$`),
	regexp.MustCompile(`fake$`),
	regexp.MustCompile(`scam$`),
	regexp.MustCompile(`^[a-z]{1,3}$`),
	regexp.MustCompile(`^\d+$`),
}

var businessSuffixes = []string{"inc", "llc", "corp", "ltd", "limited"}

// CandidateDomains guesses the domains a company called name might own.
// Order follows generation order with duplicates removed.
func CandidateDomains(name string) []string {
	clean := nonAlnumSpace.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "")
	parts := strings.Fields(clean)
	if len(parts) == 0 {
		return nil
	}

	var out []string
	if len(parts) == 1 {
		for _, tld := range []string{".com", ".net", ".org", ".co"} {
			out = append(out, parts[0]+tld)
		}
	} else {
		joined := strings.Join(parts, "")
		out = append(out,
			joined+".com",
			joined+".net",
			strings.Join(parts, "_")+".com",
			strings.Join(parts, "-")+".com",
			parts[0]+".com",
		)
	}
	return dedupe(out)
}

// IsLegitimateName applies cheap pattern heuristics to a company name after
// legal-entity suffixes are removed.
func IsLegitimateName(name string) bool {
	clean := legalSuffix.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "")
	for _, re := range suspiciousNamePatterns {
		if re.MatchString(clean) {
			return false
		}
	}
	n := utf8.RuneCountInString(clean)
	return n >= 2 && n <= 50
}

func hasBusinessSuffix(name string) bool {
	lower := strings.ToLower(name)
	for _, s := range businessSuffixes {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// NameFromDomain turns "acme-widgets.com" into "Acme Widgets". It returns ""
// when the result does not look like a company name.
func NameFromDomain(domain string) string {
	name := commonTLD.ReplaceAllString(strings.ToLower(domain), "")
	name = strings.TrimPrefix(name, "www.")
	name = strings.Join(strings.Fields(nonAlnum.ReplaceAllString(name, " ")), " ")
	if len(name) < 2 || !IsLegitimateName(name) {
		return ""
	}
	return titleCase(name)
}

// titleCase upper-cases the first letter of every run of letters and
// lower-cases the rest.
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
