package urlcheck

// Words that commonly show up in phishing links. Brand names are exempt on
// the brand's own registrable domain (see DefaultOwnDomains).
var DefaultSuspiciousKeywords = []string{
	"login", "verify", "bank", "secure", "update", "confirm",
	"account", "suspended", "urgent", "click", "winner",
	"paypal", "amazon", "microsoft", "google", "apple",
}

// Known URL shortening services
var DefaultShorteners = []string{
	"bit.ly", "tinyurl.com", "t.co", "goo.gl", "ow.ly",
	"short.link", "tiny.cc", "is.gd", "buff.ly",
}

// Registrable domains that legitimately carry a brand keyword in their name.
// Look-alikes such as paypal.tk are not on the list and still count.
var DefaultOwnDomains = []string{
	"paypal.com", "amazon.com", "microsoft.com", "google.com", "apple.com",
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithKeywords replaces the suspicious keyword list. An empty list keeps the default.
func WithKeywords(keywords []string) Option {
	return func(s *Scorer) {
		if len(keywords) > 0 {
			s.keywords = lowerAll(keywords)
		}
	}
}

// WithShorteners replaces the shortener domain list. An empty list keeps the default.
func WithShorteners(shorteners []string) Option {
	return func(s *Scorer) {
		if len(shorteners) > 0 {
			s.shorteners = lowerAll(shorteners)
		}
	}
}

// WithOwnDomains adds registrable domains on which a brand keyword matching
// the domain's name is not counted.
func WithOwnDomains(domains []string) Option {
	return func(s *Scorer) {
		for _, d := range lowerAll(domains) {
			s.ownDomains[d] = true
		}
	}
}
