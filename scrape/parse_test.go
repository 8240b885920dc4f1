package scrape

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const availablePage = `
<html><body>
<table class="timeslot-list">
<tr><th>Von</th><th>Bis</th><th>Freie E-Tickets</th><th></th></tr>
<tr>
  <td data-title="Von">10:00 Uhr</td>
  <td data-title="Bis">18:00 Uhr</td>
  <td data-title="Freie E-Tickets">42</td>
  <td><a title="Zur Tarifauswahl" href="https://www.blp-shop.de/de/tarif/123">Buchen</a></td>
</tr>
</table>
</body></html>`

const soldOutPage = `
<html><body>
<table>
<tr><th>Von</th><th>Bis</th><th>Freie E-Tickets</th><th></th></tr>
<tr>
  <td data-title="Von">10:00 Uhr</td>
  <td data-title="Bis">18:00 Uhr</td>
  <td data-title="Freie E-Tickets">Ausverkauft</td>
  <td></td>
</tr>
</table>
</body></html>`

const headerOnlyPage = `
<html><body>
<table>
<tr><th>Von</th><th>Bis</th><th>Freie E-Tickets</th></tr>
</table>
</body></html>`

func document(t *testing.T, html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestParseSlotAvailable(t *testing.T) {
	day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	slot, err := ParseSlot(document(t, availablePage), day)
	require.NoError(t, err)

	assert.True(t, slot.IsAvailable)
	assert.Equal(t, "https://www.blp-shop.de/de/tarif/123", slot.BookingLink)

	// CEST is two hours ahead of UTC
	assert.Equal(t, time.Date(2025, time.July, 1, 8, 0, 0, 0, time.UTC), slot.BeginTime)
	assert.Equal(t, time.Date(2025, time.July, 1, 16, 0, 0, 0, time.UTC), slot.EndTime)
}

func TestParseSlotSoldOut(t *testing.T) {
	day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	slot, err := ParseSlot(document(t, soldOutPage), day)
	require.NoError(t, err)

	assert.False(t, slot.IsAvailable)
	assert.Equal(t, UnavailableLink, slot.BookingLink)
}

func TestParseSlotSoldOutMarkerWinsOverLink(t *testing.T) {
	page := strings.Replace(availablePage, ">42<", ">ausverkauft<", 1)
	day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	slot, err := ParseSlot(document(t, page), day)
	require.NoError(t, err)

	assert.False(t, slot.IsAvailable)
	assert.Equal(t, UnavailableLink, slot.BookingLink)
}

func TestParseSlotNoTable(t *testing.T) {
	day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	_, err := ParseSlot(document(t, `<html><body><p>Wartung</p></body></html>`), day)
	assert.ErrorIs(t, err, ErrNoBookingTable)
}

func TestParseSlotHeaderOnly(t *testing.T) {
	day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	_, err := ParseSlot(document(t, headerOnlyPage), day)
	assert.ErrorIs(t, err, ErrNoBookingRow)
}

func TestParseSlotMissingColumns(t *testing.T) {
	page := strings.ReplaceAll(availablePage, `data-title="Bis"`, `data-title="Until"`)
	day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	_, err := ParseSlot(document(t, page), day)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoBookingRow)
}
