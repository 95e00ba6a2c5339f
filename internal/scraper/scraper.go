package scraper

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	UserAgent = "attacklab-stats/1.2 (github.com/kaitosekiya/attacklab-stats)"
	Timeout   = 30 * time.Second
)

// FetchError indicates the scoreboard page could not be retrieved.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching scoreboard %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Scraper retrieves the scoreboard page from a configured URL
type Scraper struct {
	client *http.Client
	url    string
}

// New creates a new Scraper for the given scoreboard URL
func New(url string) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: url,
	}
}

// Fetch performs a single GET and returns the raw page text.
// Any transport failure, non-200 status, or empty body is a FetchError.
func (s *Scraper) Fetch() (string, error) {
	req, err := http.NewRequest("GET", s.url, nil)
	if err != nil {
		return "", &FetchError{URL: s.url, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: s.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: s.url, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: s.url, Err: fmt.Errorf("reading body: %w", err)}
	}
	if len(body) == 0 {
		return "", &FetchError{URL: s.url, Err: fmt.Errorf("empty response body")}
	}

	return string(body), nil
}
