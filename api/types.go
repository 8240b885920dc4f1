package api

import (
	"encoding/json"
	"strings"
	"time"
)

const eventTimeLayout = "2006-01-02T15:04:05"

// EventTime serializes the way the backend expects: a naive UTC timestamp
// with a literal Z appended.
type EventTime time.Time

func (t EventTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UTC().Format(eventTimeLayout) + "Z")
}

func (t *EventTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := time.Parse(eventTimeLayout, strings.TrimSuffix(raw, "Z"))
	if err != nil {
		return err
	}

	*t = EventTime(parsed)
	return nil
}

type BookingEvent struct {
	BookingLink string    `json:"booking_link"`
	BeginTime   EventTime `json:"begin_time"`
	EndTime     EventTime `json:"end_time"`
	SaleStart   EventTime `json:"sale_start"`
	IsAvailable bool      `json:"is_available"`
}

type bookingUpdate struct {
	Variation string         `json:"variation"`
	Events    []BookingEvent `json:"events"`
}
