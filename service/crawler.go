package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/leadflowbr/leadflow_end/models"
)

var (
	emailExpr = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneExpr = regexp.MustCompile(`\(?\+?\d{2,3}\)?[\s.\-]?\(?\d{2,5}\)?[\s.\-]?\d{4,5}([\s.\-]?\d{4})?`)
)

// Crawler fetches a page and extracts lead contacts from it.
type Crawler struct {
	client *http.Client
}

// NewCrawler wires an HTTP client; the default has a 20s timeout.
func NewCrawler(client *http.Client) *Crawler {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &Crawler{client: client}
}

// Extract crawls the URL and returns the contacts found on the page.
func (cr *Crawler) Extract(ctx context.Context, rawURL string) (*models.CrawlResponse, error) {
	target, err := url.Parse(rawURL)
	if err != nil || (target.Scheme != "http" && target.Scheme != "https") || target.Host == "" {
		return nil, fmt.Errorf("invalid url %q", rawURL)
	}

	doc, err := cr.fetchDocument(ctx, target.String())
	if err != nil {
		return nil, err
	}

	leads := extractContacts(doc, target)

	return &models.CrawlResponse{
		Success:        true,
		LeadsExtracted: len(leads),
		Leads:          leads,
	}, nil
}

func (cr *Crawler) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "LeadFlowBot/1.0")

	resp, err := cr.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("crawl target returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

// extractContacts pulls the company name, emails and phones out of the page.
// Every distinct email becomes one extracted lead; a page with phones but no
// email yields a single lead with the first phone.
func extractContacts(doc *goquery.Document, target *url.URL) []models.CrawledLead {
	companyName := pageCompanyName(doc, target)
	site := target.Scheme + "://" + target.Host

	emails := map[string]struct{}{}
	order := []string{}

	doc.Find(`a[href^="mailto:"]`).Each(func(i int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		addr := strings.TrimPrefix(href, "mailto:")
		if idx := strings.IndexByte(addr, '?'); idx >= 0 {
			addr = addr[:idx]
		}
		addr = strings.TrimSpace(addr)
		if addr != "" {
			if _, seen := emails[addr]; !seen {
				emails[addr] = struct{}{}
				order = append(order, addr)
			}
		}
	})

	bodyText := doc.Find("body").Text()
	for _, addr := range emailExpr.FindAllString(bodyText, -1) {
		if _, seen := emails[addr]; !seen {
			emails[addr] = struct{}{}
			order = append(order, addr)
		}
	}

	phones := phoneExpr.FindAllString(bodyText, -1)
	firstPhone := ""
	if len(phones) > 0 {
		firstPhone = strings.TrimSpace(phones[0])
	}

	if len(order) == 0 {
		if firstPhone == "" {
			return nil
		}
		return []models.CrawledLead{{
			CompanyName: companyName,
			Website:     site,
			Phone:       firstPhone,
		}}
	}

	leads := make([]models.CrawledLead, 0, len(order))
	for _, addr := range order {
		leads = append(leads, models.CrawledLead{
			CompanyName: companyName,
			Website:     site,
			Email:       addr,
			Phone:       firstPhone,
		})
	}

	return leads
}

// pageCompanyName prefers og:site_name, then the <title>, then the hostname.
func pageCompanyName(doc *goquery.Document, target *url.URL) string {
	if name, ok := doc.Find(`meta[property="og:site_name"]`).Attr("content"); ok {
		if name = strings.TrimSpace(name); name != "" {
			return name
		}
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title != "" {
		// strip common " - tagline" suffixes
		for _, sep := range []string{" | ", " - ", " – "} {
			if idx := strings.Index(title, sep); idx > 0 {
				title = title[:idx]
				break
			}
		}
		return strings.TrimSpace(title)
	}

	return strings.TrimPrefix(target.Host, "www.")
}
