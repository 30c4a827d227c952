package company

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidateDomains_SingleWord(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{"acme.com", "acme.net", "acme.org", "acme.co"},
		CandidateDomains("Acme!"))
}

func TestCandidateDomains_MultiWord(t *testing.T) {
	assert.Equal(t, []string{
		"acmewidgets.com",
		"acmewidgets.net",
		"acme_widgets.com",
		"acme-widgets.com",
		"acme.com",
	}, CandidateDomains("  Acme  Widgets, "))
}

func TestCandidateDomains_NoTokens(t *testing.T) {
	assert.Empty(t, CandidateDomains("!!! ???"))
}

func TestCandidateDomains_Deduplicates(t *testing.T) {
	domains := CandidateDomains("a b")
	seen := map[string]bool{}
	for _, d := range domains {
		assert.False(t, seen[d], d)
		seen[d] = true
	}
}

func TestIsLegitimateName(t *testing.T) {
	valid := []string{"Acme Widgets", "Initech", "Globex Corporation", "Hooli Inc"}
	for _, name := range valid {
		assert.True(t, IsLegitimateName(name), name)
	}

	invalid := []string{
		"test company", "Acme Test", "fakeshop", "Best Scam", "ibm", "12345",
		"x", "Co", strings50("a"),
	}
	for _, name := range invalid {
		assert.False(t, IsLegitimateName(name), name)
	}
}

func TestIsLegitimateName_SuffixRemovedAsWholeWord(t *testing.T) {
	assert.False(t, IsLegitimateName("Test Inc"))
	assert.False(t, IsLegitimateName("LLC"))
	// not a separate word, so nothing is stripped
	assert.True(t, IsLegitimateName("abccorp"))
}

func TestNameFromDomain(t *testing.T) {
	assert.Equal(t, "Acme Widgets", NameFromDomain("acme-widgets.com"))
	assert.Equal(t, "Hooli", NameFromDomain("www.hooli.io"))
	assert.Equal(t, "", NameFromDomain("abc.com"))
	assert.Equal(t, "", NameFromDomain("testsite.com"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "New York", titleCase("new york"))
	assert.Equal(t, "3M Company", titleCase("3m COMPANY"))
}

func strings50(s string) string {
	out := ""
	for len(out) <= 50 {
		out += s
	}
	return out
}
