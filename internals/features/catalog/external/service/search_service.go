// file: internals/features/catalog/external/service/search_service.go
package service

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"time"

	"bokjisa_backend/internals/configs"
)

// ExternalSubject is one row from the credit-bank catalog search.
type ExternalSubject struct {
	Institution string `json:"institution"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Credits     int    `json:"credits"`
}

// Searcher proxies the upstream credit-bank catalog. Every failure mode
// (unset URL, timeout, bad status, bad payload) degrades to an empty result:
// the admin screen renders "no results", never an error page.
type Searcher struct {
	client  *http.Client
	baseURL func() string
}

func NewSearcher() *Searcher {
	return &Searcher{
		client:  &http.Client{Timeout: 3 * time.Second},
		baseURL: func() string { return configs.CreditBankAPIURL },
	}
}

// NewSearcherWithClient is the test seam.
func NewSearcherWithClient(client *http.Client, baseURL string) *Searcher {
	return &Searcher{client: client, baseURL: func() string { return baseURL }}
}

func (s *Searcher) Search(ctx context.Context, query string) []ExternalSubject {
	base := s.baseURL()
	if base == "" || query == "" {
		return []ExternalSubject{}
	}

	endpoint, err := url.Parse(base)
	if err != nil {
		log.Printf("[WARN] credit-bank URL invalid: %v", err)
		return []ExternalSubject{}
	}
	q := endpoint.Query()
	q.Set("q", query)
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return []ExternalSubject{}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[WARN] credit-bank search failed: %v", err)
		return []ExternalSubject{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[WARN] credit-bank search returned %d", resp.StatusCode)
		return []ExternalSubject{}
	}

	var results []ExternalSubject
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		log.Printf("[WARN] credit-bank payload decode failed: %v", err)
		return []ExternalSubject{}
	}
	if results == nil {
		results = []ExternalSubject{}
	}
	return results
}
