package company

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

//
// CONTENT SCRAPE
//

const (
	maxPageBytes  = 2 * 1024 * 1024
	maxAboutRunes = 500
	minAddressLen = 10
)

// Checked in order; the first element whose text passes IsLegitimateName wins.
var nameSelectors = []string{
	"h1", ".company-name", ".brand", ".logo-text",
	`[class*="company"]`, `[class*="brand"]`, ".navbar-brand",
	".site-title", ".header-logo",
}

var addressSelectors = []string{".address", `[class*="address"]`, ".location"}

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	aboutPattern = regexp.MustCompile(`(?i)about`)
)

// scrapeSite fetches the page and extracts whatever company facts it can.
// The page must answer exactly 200.
func (v *Verifier) scrapeSite(ctx context.Context, pageURL string) (*Evidence, error) {
	doc, err := v.fetchDocument(ctx, pageURL)
	if err != nil {
		log.Printf("[Scrape] %s: %v", pageURL, err)
		return nil, nil
	}

	facts := extractPage(doc)
	if facts == (pageFacts{}) && v.renderer != nil {
		log.Printf("[Scrape] nothing found in static HTML of %s, rendering", pageURL)
		if rendered, err := v.renderDocument(ctx, pageURL); err != nil {
			log.Printf("[Render] %s: %v", pageURL, err)
		} else {
			facts = extractPage(rendered)
		}
	}
	if facts == (pageFacts{}) {
		return nil, nil
	}

	attrs := facts.attributes()
	attrs.URL = pageURL
	return &Evidence{Source: SourceContentScrape, Attributes: attrs}, nil
}

func (v *Verifier) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	req, err := v.newRequest(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %s", resp.Status)
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, maxPageBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decode charset: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

func (v *Verifier) renderDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	html, err := v.renderer.Render(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// pageFacts is what a single page yields. It is comparable so an empty
// extraction can be detected with ==.
type pageFacts struct {
	Title       string
	Description string
	Industry    string
	Name        string
	About       string
	Location    string
	FoundedYear int
	Email       string
	Phone       string
	Address     string
}

func (f pageFacts) attributes() Attributes {
	return Attributes{
		CompanyName:  f.Name,
		WebsiteTitle: f.Title,
		Description:  f.Description,
		Industry:     f.Industry,
		AboutText:    f.About,
		Location:     f.Location,
		FoundedYear:  f.FoundedYear,
		ContactEmail: f.Email,
		ContactPhone: f.Phone,
		Address:      f.Address,
	}
}

func extractPage(doc *goquery.Document) pageFacts {
	var f pageFacts

	f.Title = strings.TrimSpace(doc.Find("title").First().Text())
	f.Description = strings.TrimSpace(metaContent(doc, "description"))
	if kw := metaContent(doc, "keywords"); kw != "" {
		f.Industry = IndustryFromKeywords(kw)
	}

	for _, sel := range nameSelectors {
		text := strings.TrimSpace(doc.Find(sel).First().Text())
		if utf8.RuneCountInString(text) > 2 && IsLegitimateName(text) {
			f.Name = text
			break
		}
	}

	if about := aboutSection(doc); about != nil {
		f.About = truncateRunes(strings.TrimSpace(about.Text()), maxAboutRunes)
		f.Location = ExtractLocation(f.About)
		f.FoundedYear = ExtractFoundedYear(f.About)
	}

	text := doc.Text()
	f.Email = emailPattern.FindString(text)
	f.Phone = strings.TrimSpace(phonePattern.FindString(text))
	for _, sel := range addressSelectors {
		addr := strings.TrimSpace(doc.Find(sel).First().Text())
		if len(addr) > minAddressLen {
			f.Address = addr
			break
		}
	}
	return f
}

func metaContent(doc *goquery.Document, name string) string {
	return doc.Find(fmt.Sprintf(`meta[name=%q]`, name)).First().AttrOr("content", "")
}

// aboutSection finds the "about us" block: section#about, div.about, an h2
// mentioning about, or any div whose class mentions about.
func aboutSection(doc *goquery.Document) *goquery.Selection {
	if s := doc.Find("section#about").First(); s.Length() > 0 {
		return s
	}
	if s := doc.Find("div.about").First(); s.Length() > 0 {
		return s
	}
	h2 := doc.Find("h2").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return aboutPattern.MatchString(s.Text())
	}).First()
	if h2.Length() > 0 {
		return h2
	}
	div := doc.Find("div[class]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return aboutPattern.MatchString(s.AttrOr("class", ""))
	}).First()
	if div.Length() > 0 {
		return div
	}
	return nil
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
