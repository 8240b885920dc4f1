package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lakeUUID = "25aa2968-e34e-4f86-87cc-56b16b5aff36"

func TestEventTimeMarshalsNaiveUTCWithZ(t *testing.T) {
	instant := EventTime(time.Date(2025, time.July, 1, 8, 0, 0, 0, time.UTC))

	raw, err := json.Marshal(instant)
	require.NoError(t, err)
	assert.Equal(t, `"2025-07-01T08:00:00Z"`, string(raw))
}

func TestPutBookings(t *testing.T) {
	var gotMethod, gotPath, gotAuth, gotContentType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer server.Close()

	client := &Client{
		BaseURL:      server.URL,
		PathTemplate: "lake/%s/booking",
		APIKey:       "sekrit",
	}

	events := []BookingEvent{
		{
			BookingLink: "https://www.blp-shop.de/de/tarif/123",
			BeginTime:   EventTime(time.Date(2025, time.July, 1, 8, 0, 0, 0, time.UTC)),
			EndTime:     EventTime(time.Date(2025, time.July, 1, 16, 0, 0, 0, time.UTC)),
			SaleStart:   EventTime(time.Date(2025, time.June, 30, 22, 0, 0, 0, time.UTC)),
			IsAvailable: true,
		},
	}

	err := client.PutBookings(context.Background(), lakeUUID, "Stadtbad Babelsberg", events)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/lake/"+lakeUUID+"/booking", gotPath)
	assert.Equal(t, "Bearer sekrit", gotAuth)
	assert.Equal(t, "application/json", gotContentType)

	assert.JSONEq(t, `{
		"variation": "Stadtbad Babelsberg",
		"events": [
			{
				"booking_link": "https://www.blp-shop.de/de/tarif/123",
				"begin_time": "2025-07-01T08:00:00Z",
				"end_time": "2025-07-01T16:00:00Z",
				"sale_start": "2025-06-30T22:00:00Z",
				"is_available": true
			}
		]
	}`, string(gotBody))
}

func TestPutBookingsSendsEmptyEventListAsList(t *testing.T) {
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, PathTemplate: "lake/%s/booking", APIKey: "sekrit"}

	err := client.PutBookings(context.Background(), lakeUUID, "Stadtbad Babelsberg", nil)
	require.NoError(t, err)

	assert.JSONEq(t, `{"variation": "Stadtbad Babelsberg", "events": []}`, string(gotBody))
}

func TestPutBookingsRejectedByBackend(t *testing.T) {
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad token"))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, PathTemplate: "lake/%s/booking", APIKey: "wrong", MaxRetries: 3}

	err := client.PutBookings(context.Background(), lakeUUID, "Stadtbad Babelsberg", nil)
	require.Error(t, err)

	assert.Contains(t, err.Error(), server.URL)
	assert.Contains(t, err.Error(), "bad token")
	// 4xx responses are not retried
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestPutBookingsRetriesServerErrors(t *testing.T) {
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, PathTemplate: "lake/%s/booking", APIKey: "sekrit", MaxRetries: 2}

	err := client.PutBookings(context.Background(), lakeUUID, "Stadtbad Babelsberg", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
