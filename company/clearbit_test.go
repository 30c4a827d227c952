package company

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const globexClearbit = `{
  "name": "Globex Corporation",
  "domain": "globex.com",
  "description": "Diversified holding company.",
  "logo": "https://logo.clearbit.com/globex.com",
  "foundedYear": 1989,
  "category": {"industry": "Conglomerates"},
  "geo": {"city": "Springfield", "state": "Oregon", "country": "United States"},
  "metrics": {"employees": 5200},
  "social": {"twitter": {"handle": "globex"}, "linkedin": {"handle": "globex-corp"}, "facebook": {"handle": null}}
}`

// clearbitClient serves the company API and leaves every other host offline.
func clearbitClient(t *testing.T, status int, body string) *http.Client {
	return &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		if r.URL.Host != "company.clearbit.com" {
			return nil, errOffline
		}
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "Globex Corporation", r.URL.Query().Get("name"))
		return respond(r, status, body), nil
	})}
}

func TestSearchClearbit(t *testing.T) {
	v := New(WithHTTPClient(clearbitClient(t, http.StatusOK, globexClearbit)), WithAPIKey("test-key"))

	ev, err := v.searchClearbit(context.Background(), "Globex Corporation")
	require.NoError(t, err)
	require.NotNil(t, ev)
	assert.Equal(t, SourceThirdPartyAPI, ev.Source)

	want := Attributes{
		CompanyName:   "Globex Corporation",
		Domain:        "globex.com",
		Description:   "Diversified holding company.",
		Industry:      "Conglomerates",
		Location:      "Springfield, Oregon, United States",
		FoundedYear:   1989,
		EmployeeCount: "5200",
		LogoURL:       "https://logo.clearbit.com/globex.com",
		SocialLinks: map[string]string{
			"twitter":  "https://twitter.com/globex",
			"linkedin": "https://linkedin.com/company/globex-corp",
		},
	}
	if diff := cmp.Diff(want, ev.Attributes); diff != "" {
		t.Errorf("attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchClearbit_DisabledWithoutKey(t *testing.T) {
	v := New(WithHTTPClient(&http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		t.Fatalf("unexpected request to %s", r.URL)
		return nil, nil
	})}))

	ev, err := v.searchClearbit(context.Background(), "Globex Corporation")
	require.NoError(t, err)
	assert.Nil(t, ev)
}

func TestSearchClearbit_NotFoundIsAbsent(t *testing.T) {
	v := New(WithHTTPClient(clearbitClient(t, http.StatusNotFound, `{"error":{"type":"unknown_record"}}`)), WithAPIKey("test-key"))

	ev, err := v.searchClearbit(context.Background(), "Globex Corporation")
	require.NoError(t, err)
	assert.Nil(t, ev)
}

func TestSearchClearbit_ServerErrorIsAbsent(t *testing.T) {
	v := New(WithHTTPClient(clearbitClient(t, http.StatusServiceUnavailable, "")), WithAPIKey("test-key"))

	ev, err := v.searchClearbit(context.Background(), "Globex Corporation")
	require.NoError(t, err)
	assert.Nil(t, ev)
}

func TestSearchClearbit_MalformedPayload(t *testing.T) {
	v := New(WithHTTPClient(clearbitClient(t, http.StatusOK, "{not json")), WithAPIKey("test-key"))

	_, err := v.searchClearbit(context.Background(), "Globex Corporation")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode clearbit response")
}

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, "Springfield, United States", joinNonEmpty("Springfield", " ", "United States"))
	assert.Equal(t, "", joinNonEmpty("", ""))
}
