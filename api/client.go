package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	gotel "github.com/woog-life/potsdam-booking-scraper/otel"
)

// Client pushes scraped booking events to the woog.life backend.
type Client struct {
	BaseURL      string
	PathTemplate string // printf pattern taking the lake UUID
	APIKey       string

	HTTPClient  *http.Client
	MaxRetries  uint64
	EnableTrace bool
}

// PutBookings replaces the lake's booking events. An empty slice is pushed
// as an empty JSON list, which clears stale slots server-side.
func (c *Client) PutBookings(ctxt context.Context, lakeUUID string, variation string, events []BookingEvent) error {
	if c.EnableTrace {
		_, span := gotel.GetTracer(ctxt).Start(ctxt, "putBookings", gotel.ClientOptions)
		defer span.End()
	}

	if events == nil {
		events = make([]BookingEvent, 0)
	}

	url := strings.Join([]string{c.BaseURL, fmt.Sprintf(c.PathTemplate, lakeUUID)}, "/")

	body, err := json.Marshal(bookingUpdate{
		Variation: variation,
		Events:    events,
	})
	if err != nil {
		return err
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctxt, http.MethodPut, url, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient().Do(req)
		if err != nil {
			return fmt.Errorf("error while connecting to backend (%s): %w", url, err)
		}
		defer func() { _ = resp.Body.Close() }()

		content, _ := io.ReadAll(resp.Body)
		ok := resp.StatusCode >= 200 && resp.StatusCode < 300
		log.Debug().Msgf("success: %v | content: %s", ok, content)

		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("PUT %s: status %d", url, resp.StatusCode)
		}
		if !ok {
			return backoff.Permanent(fmt.Errorf("failed to put booking events for variation %q to backend %s: %s", variation, url, content))
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.MaxRetries), ctxt)
	return backoff.Retry(operation, policy)
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
