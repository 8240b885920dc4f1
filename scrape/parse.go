package scrape

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

var (
	ErrNoBookingTable = errors.New("table not found in booking page")
	ErrNoBookingRow   = errors.New("no booking row found")
)

const soldOutMarker = "ausverkauft"

// ParseSlot extracts the day's time slot from the booking page: the
// "Von"/"Bis" columns give the window, "Freie E-Tickets" plus the presence
// of a tariff link decide availability.
func ParseSlot(doc *goquery.Document, day time.Time) (Slot, error) {
	row, err := findBookingRow(doc)
	if err != nil {
		return Slot{}, err
	}

	fromCol := row.Find(`td[data-title="Von"]`).First()
	untilCol := row.Find(`td[data-title="Bis"]`).First()
	freeCol := row.Find(`td[data-title="Freie E-Tickets"]`).First()
	bookingLinkA := row.Find(`td a[title="Zur Tarifauswahl"]`).First()

	if fromCol.Length() == 0 || untilCol.Length() == 0 || freeCol.Length() == 0 {
		return Slot{}, fmt.Errorf("booking row is missing expected columns (Von=%d, Bis=%d, Freie E-Tickets=%d)",
			fromCol.Length(), untilCol.Length(), freeCol.Length())
	}

	beginTime, err := ParseSlotTime(day, fromCol.Text())
	if err != nil {
		return Slot{}, err
	}

	endTime, err := ParseSlotTime(day, untilCol.Text())
	if err != nil {
		return Slot{}, err
	}

	isAvailable := bookingLinkA.Length() > 0 &&
		!strings.Contains(strings.ToLower(freeCol.Text()), soldOutMarker)

	bookingLink := UnavailableLink
	if isAvailable {
		href, ok := bookingLinkA.Attr("href")
		if !ok {
			isAvailable = false
		} else {
			bookingLink = href
		}
	}

	return Slot{
		BookingLink: bookingLink,
		BeginTime:   beginTime,
		EndTime:     endTime,
		IsAvailable: isAvailable,
	}, nil
}

// findBookingRow returns the first table row that actually carries data
// cells; the leading rows are headers.
func findBookingRow(doc *goquery.Document) (*goquery.Selection, error) {
	table := doc.Find("table").First()
	if table.Length() == 0 {
		log.Error().Msg("table not found in html")
		return nil, ErrNoBookingTable
	}

	rows := table.Find("tr")
	if rows.Length() < 2 {
		log.Error().Msgf("tr not found or len(rows) < 2 (got %d)", rows.Length())
		return nil, ErrNoBookingRow
	}

	var found *goquery.Selection
	rows.EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if row.Find("td").Length() > 0 {
			found = row
			return false
		}
		return true
	})

	if found == nil {
		log.Error().Msg("Couldn't find a row for bookings")
		return nil, ErrNoBookingRow
	}

	return found, nil
}
