package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safelink-lite/company"
	"safelink-lite/urlcheck"
)

// recorder collects the inputs a fake was called with. Handlers run on the
// server's goroutines.
type recorder struct {
	mu  sync.Mutex
	got []string
}

func (r *recorder) record(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, s)
}

func (r *recorder) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.got...)
}

type fakeScorer struct{ recorder }

func (f *fakeScorer) Score(raw string) urlcheck.Verdict {
	f.record(raw)
	score := 2
	return urlcheck.Verdict{
		URL:       raw,
		Status:    urlcheck.StatusSuspicious,
		RiskLevel: urlcheck.RiskMedium,
		RiskScore: &score,
		Reasons:   []string{"No HTTPS encryption"},
	}
}

type fakeVerifier struct{ recorder }

func (f *fakeVerifier) Verify(_ context.Context, input string) company.Verdict {
	f.record(input)
	v := company.Verdict{
		Verified:   true,
		IsReal:     true,
		Confidence: company.ConfidenceHigh,
		Sources:    []company.SourceKind{company.SourceKnowledgeBase},
	}
	v.CompanyName = "Google LLC"
	return v
}

func newTestServer(t *testing.T) (*httptest.Server, *fakeScorer, *fakeVerifier) {
	t.Helper()
	scorer, verifier := &fakeScorer{}, &fakeVerifier{}
	ts := httptest.NewServer(New(scorer, verifier).Routes())
	t.Cleanup(ts.Close)
	return ts, scorer, verifier
}

func post(t *testing.T, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestCheckURL(t *testing.T) {
	ts, scorer, _ := newTestServer(t)

	resp, out := post(t, ts.URL+"/check-url", `{"url": "  http://example.com  "}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.Equal(t, "SUSPICIOUS", out["status"])
	assert.Equal(t, "MEDIUM", out["risk_level"])
	assert.EqualValues(t, 2, out["risk_score"])
	assert.Equal(t, "http://example.com", out["url"])
	assert.Equal(t, []string{"http://example.com"}, scorer.calls())
}

func TestCheckURL_BadRequests(t *testing.T) {
	ts, scorer, _ := newTestServer(t)

	tests := []struct {
		body string
		want string
	}{
		{`{}`, "URL is required"},
		{`not json`, "URL is required"},
		{`{"url": "   "}`, "URL cannot be empty"},
	}
	for _, tt := range tests {
		resp, out := post(t, ts.URL+"/check-url", tt.body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, tt.body)
		assert.Equal(t, tt.want, out["error"], tt.body)
	}
	assert.Empty(t, scorer.calls())
}

func TestVerifyCompany(t *testing.T) {
	ts, _, verifier := newTestServer(t)

	resp, out := post(t, ts.URL+"/verify-company", `{"company_name": " Google "}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, out["verified"])
	assert.Equal(t, true, out["is_real"])
	assert.Equal(t, "high", out["confidence"])
	assert.Equal(t, "Google LLC", out["company_name"])
	assert.Equal(t, []any{"knowledge_base"}, out["sources"])
	assert.Equal(t, []string{"Google"}, verifier.calls())
}

func TestVerifyCompany_BadRequests(t *testing.T) {
	ts, _, verifier := newTestServer(t)

	resp, out := post(t, ts.URL+"/verify-company", `{"name": "Google"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Company name is required", out["error"])

	resp, out = post(t, ts.URL+"/verify-company", `{"company_name": ""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Company name cannot be empty", out["error"])

	assert.Empty(t, verifier.calls())
}

func TestHealth(t *testing.T) {
	ts, _, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "req-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "req-123", resp.Header.Get("X-Request-ID"))
	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, map[string]string{"status": "healthy"}, out)
}

func TestUnknownMethod(t *testing.T) {
	ts, _, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/check-url")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
