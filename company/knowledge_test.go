package company

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnowledgeBase_Lookup(t *testing.T) {
	kb := NewKnowledgeBase(DefaultKnownCompanies)

	p, ok := kb.Lookup("Google")
	require.True(t, ok)
	assert.Equal(t, "Google LLC", p.CompanyName)
	assert.Equal(t, "google.com", p.Domain)

	p, ok = kb.Lookup("Microsoft Corp.")
	require.True(t, ok)
	assert.Equal(t, "Microsoft Corporation", p.CompanyName)

	// the normalized name may also be a fragment of a key
	p, ok = kb.Lookup("Mc Afee")
	require.True(t, ok)
	assert.Equal(t, "McAfee Corp", p.CompanyName)

	_, ok = kb.Lookup("Acme Widgets")
	assert.False(t, ok)
}

func TestKnowledgeBase_EmptyNameNeverMatches(t *testing.T) {
	kb := NewKnowledgeBase(DefaultKnownCompanies)
	_, ok := kb.Lookup("  ., ")
	assert.False(t, ok)
}

func TestKnowledgeBase_FirstEntryWins(t *testing.T) {
	kb := NewKnowledgeBase([]KnownCompany{
		{Key: "acme", Profile: Profile{CompanyName: "Acme One"}},
		{Key: "Acme Widgets", Profile: Profile{CompanyName: "Acme Two"}},
	})
	p, ok := kb.Lookup("acme widgets")
	require.True(t, ok)
	assert.Equal(t, "Acme One", p.CompanyName)
}

func TestNewKnowledgeBase_DropsEmptyKeys(t *testing.T) {
	kb := NewKnowledgeBase([]KnownCompany{
		{Key: " ", Profile: Profile{CompanyName: "Nobody"}},
		{Key: "Initrode", Profile: Profile{CompanyName: "Initrode"}},
	})
	assert.Equal(t, 1, kb.Len())
	assert.Equal(t, len(DefaultKnownCompanies), NewKnowledgeBase(DefaultKnownCompanies).Len())
}

func TestKnowledgeBase_Domains(t *testing.T) {
	kb := NewKnowledgeBase([]KnownCompany{
		{Key: "initrode", Profile: Profile{CompanyName: "Initrode", Domain: "initrode.com"}},
		{Key: "nodomain", Profile: Profile{CompanyName: "No Domain"}},
	})
	assert.Equal(t, []string{"initrode.com"}, kb.Domains())
	assert.Contains(t, NewKnowledgeBase(DefaultKnownCompanies).Domains(), "google.com")
}

func TestProfileAttributes(t *testing.T) {
	p := DefaultKnownCompanies[0].Profile
	a := p.attributes()
	assert.Equal(t, p.CompanyName, a.CompanyName)
	assert.Equal(t, p.FoundedYear, a.FoundedYear)
	assert.Equal(t, p.EmployeeCount, a.EmployeeCount)
	assert.Nil(t, a.WebsiteAccessible)
}
