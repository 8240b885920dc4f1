package scrape

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// The booking site renders everything in German local time.
const (
	siteTimezone   = "Europe/Berlin"
	slotTimeLayout = "02.01.2006 15:04 Uhr"
	rowDateLayout  = "02.01.2006"
	urlDateLayout  = "2006-01-02"
)

var (
	locationOnce sync.Once
	location     *time.Location
	locationErr  error
)

func siteLocation() (*time.Location, error) {
	locationOnce.Do(func() {
		location, locationErr = time.LoadLocation(siteTimezone)
	})
	return location, locationErr
}

// ParseSlotTime interprets a "HH:MM Uhr" table cell on the given day as
// Europe/Berlin wall time and converts it to UTC.
func ParseSlotTime(day time.Time, cell string) (time.Time, error) {
	loc, err := siteLocation()
	if err != nil {
		return time.Time{}, err
	}

	combined := fmt.Sprintf("%s %s", day.Format(rowDateLayout), strings.TrimSpace(cell))
	parsed, err := time.ParseInLocation(slotTimeLayout, combined, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse slot time [%s]: %w", combined, err)
	}

	return parsed.UTC(), nil
}

// Midnight returns the UTC instant of local midnight (Europe/Berlin) on the
// given day. The backend receives it as the slot's sale start.
func Midnight(day time.Time) (time.Time, error) {
	loc, err := siteLocation()
	if err != nil {
		return time.Time{}, err
	}

	local := day.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).UTC(), nil
}
