package scrape

import "time"

// UnavailableLink is the sentinel the backend expects for slots that cannot
// be booked.
const UnavailableLink = "https://not.available"

// Slot is one bookable swimming window, times already converted to UTC.
type Slot struct {
	BookingLink string
	BeginTime   time.Time
	EndTime     time.Time
	IsAvailable bool
}
