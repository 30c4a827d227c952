package company

import (
	"regexp"
	"strconv"
	"strings"
)

//
// TEXT EXTRACTION
//

const (
	minFoundedYear  = 1900
	maxFoundedYear  = 2026
	defaultIndustry = "Technology"
)

var knownCities = []string{
	"new york", "los angeles", "chicago", "houston", "phoenix", "philadelphia",
	"san antonio", "san diego", "dallas", "san jose", "austin", "jacksonville",
	"boston", "seattle", "denver", "washington dc", "nashville", "oklahoma city",
	"london", "paris", "tokyo", "singapore", "dubai", "sydney", "toronto",
	"bangalore", "mumbai", "delhi", "hyderabad", "chennai", "kolkata",
}

var knownStates = []string{
	"california", "texas", "florida", "new york", "pennsylvania", "illinois",
	"ohio", "georgia", "north carolina", "michigan", "new jersey", "virginia",
}

var knownCountries = []string{
	"united states", "usa", "canada", "united kingdom", "uk", "germany",
	"france", "japan", "china", "india", "australia", "singapore",
}

var foundedYearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`founded\s+in\s+(\d{4})`),
	regexp.MustCompile(`since\s+(\d{4})`),
	regexp.MustCompile(`established\s+(\d{4})`),
	regexp.MustCompile(`started\s+in\s+(\d{4})`),
	regexp.MustCompile(`(\d{4})\s*-\s*present`),
	regexp.MustCompile(`from\s+(\d{4})`),
}

type industryBucket struct {
	Name     string
	Keywords []string
}

var industryBuckets = []industryBucket{
	{"Technology", []string{"software", "technology", "tech", "it", "programming", "development", "saas"}},
	{"Healthcare", []string{"health", "medical", "healthcare", "pharmaceutical", "medicine"}},
	{"Finance", []string{"finance", "banking", "financial", "investment", "insurance", "fintech"}},
	{"Education", []string{"education", "learning", "training", "school", "university", "courses"}},
	{"Ecommerce", []string{"ecommerce", "e-commerce", "retail", "shopping", "store", "marketplace"}},
	{"Marketing", []string{"marketing", "advertising", "digital marketing", "seo", "social media"}},
	{"Consulting", []string{"consulting", "consultancy", "advisory", "solutions"}},
	{"Manufacturing", []string{"manufacturing", "production", "industrial", "factory"}},
	{"Real Estate", []string{"real estate", "property", "housing", "construction"}},
	{"Cybersecurity", []string{"cybersecurity", "security", "information security", "cyber security"}},
	{"Automotive", []string{"automotive", "car", "vehicle", "automobile"}},
	{"Food", []string{"food", "restaurant", "catering", "food service"}},
	{"Travel", []string{"travel", "tourism", "hospitality", "hotel"}},
}

// ExtractLocation returns the first known city, then state, then country
// mentioned in text, title-cased. It returns "" when nothing matches.
func ExtractLocation(text string) string {
	lower := strings.ToLower(text)
	for _, list := range [][]string{knownCities, knownStates, knownCountries} {
		for _, place := range list {
			if strings.Contains(lower, place) {
				return titleCase(place)
			}
		}
	}
	return ""
}

// ExtractFoundedYear looks for phrases like "founded in 2010" or "2015-present".
// Only years in [1900, 2026] are accepted; 0 means none found.
func ExtractFoundedYear(text string) int {
	lower := strings.ToLower(text)
	for _, re := range foundedYearPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		year, err := strconv.Atoi(m[1])
		if err == nil && year >= minFoundedYear && year <= maxFoundedYear {
			return year
		}
	}
	return 0
}

// IndustryFromKeywords maps free-form keywords onto an industry bucket,
// defaulting to Technology.
func IndustryFromKeywords(keywords string) string {
	lower := strings.ToLower(keywords)
	for _, bucket := range industryBuckets {
		for _, kw := range bucket.Keywords {
			if strings.Contains(lower, kw) {
				return bucket.Name
			}
		}
	}
	return defaultIndustry
}
