package scrape

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"
)

// Fetcher retrieves the booking page for a single day. The page declares
// ISO-8859-1, so the body is decoded through whatever charset the response
// claims before parsing.
type Fetcher struct {
	URLTemplate string // printf pattern taking the YYYY-MM-DD date
	Client      *http.Client
	MaxRetries  uint64 // extra attempts on transport errors and 5xx
}

func (f *Fetcher) FetchDay(ctxt context.Context, day time.Time) (*goquery.Document, error) {
	url := fmt.Sprintf(f.URLTemplate, day.Format(urlDateLayout))
	log.Debug().Msgf("Requesting %s", url)

	var doc *goquery.Document

	operation := func() error {
		req, err := http.NewRequestWithContext(ctxt, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := f.httpClient().Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("GET %s: status %d", url, resp.StatusCode))
		}

		reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
		if err != nil {
			return backoff.Permanent(err)
		}

		parsed, err := goquery.NewDocumentFromReader(reader)
		if err != nil {
			return backoff.Permanent(err)
		}

		doc = parsed
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), f.MaxRetries), ctxt)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	return doc, nil
}

func (f *Fetcher) httpClient() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return http.DefaultClient
}
